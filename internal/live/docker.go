package live

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// DockerStatus reports a container's status line, like
// "container-name  Up 43 hours (healthy)". When docker is available
// locally it runs directly; otherwise, with a configured host, it runs
// over SSH. Anything else (no container, no docker, timeout) yields
// the placeholder.
func DockerStatus(ctx context.Context, name, host string) string {
	if name == "" {
		return Placeholder
	}

	var args []string
	switch {
	case host == "" && localDockerAvailable():
		args = []string{
			"docker", "ps",
			"--filter", fmt.Sprintf("name=^%s$", name),
			"--format", "{{.Names}}  {{.Status}}",
		}
	case host != "":
		remote := fmt.Sprintf(
			"docker ps --filter 'name=^%s$' --format '{{.Names}}  {{.Status}}'", name)
		args = []string{"ssh", "-o", "ConnectTimeout=3", host, remote}
	default:
		return Placeholder
	}

	ctx, cancel := context.WithTimeout(ctx, Timeout)
	defer cancel()
	out, err := exec.CommandContext(ctx, args[0], args[1:]...).Output()
	if err != nil {
		return Placeholder
	}
	status := strings.TrimSpace(string(out))
	if status == "" {
		return Placeholder
	}
	return status
}

func localDockerAvailable() bool {
	_, err := exec.LookPath("docker")
	return err == nil
}
