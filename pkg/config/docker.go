package config

import (
	"net"
	"os"
	"sync"
)

var (
	isDockerOnce   sync.Once
	isDockerResult bool
)

// IsRunningInDocker returns true if the application is running inside a Docker container.
// Detection is based on the presence of /.dockerenv file which exists in all Docker containers.
// The result is cached after the first call.
func IsRunningInDocker() bool {
	isDockerOnce.Do(func() {
		_, err := os.Stat("/.dockerenv")
		isDockerResult = err == nil
	})
	return isDockerResult
}

// ResolveHostForDocker returns the appropriate host for reaching services
// that run on the host machine, such as a local Redis used as the cache
// backend. If running in Docker and the host is "localhost" or "127.0.0.1",
// it returns "host.docker.internal". Otherwise, returns the host unchanged.
func ResolveHostForDocker(host string) string {
	if !IsRunningInDocker() {
		return host
	}

	if host == "localhost" || host == "127.0.0.1" {
		return "host.docker.internal"
	}

	return host
}

// ResolveAddrForDocker applies ResolveHostForDocker to a host:port address.
// Addresses without a port are treated as bare hosts.
func ResolveAddrForDocker(addr string) string {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return ResolveHostForDocker(addr)
	}
	return net.JoinHostPort(ResolveHostForDocker(host), port)
}
