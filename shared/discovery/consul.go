package discovery

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/hashicorp/consul/api"
)

// Registry registers gRPC services with a Consul agent so the gateway can
// resolve them by name.
type Registry struct {
	client *api.Client
}

func NewRegistry(consulAddr string) (*Registry, error) {
	consulConfig := api.DefaultConfig()
	consulConfig.Address = consulAddr

	client, err := api.NewClient(consulConfig)
	if err != nil {
		return nil, fmt.Errorf("create consul client: %w", err)
	}

	return &Registry{client: client}, nil
}

// Register announces a gRPC service instance. The returned ID is needed to
// deregister on shutdown. Health is probed through the standard gRPC health
// check service.
func (r *Registry) Register(serviceName, host string, port int) (string, error) {
	instanceID := fmt.Sprintf("%s-%s", serviceName, uuid.NewString())

	registration := &api.AgentServiceRegistration{
		ID:      instanceID,
		Name:    serviceName,
		Address: host,
		Port:    port,
		Check: &api.AgentServiceCheck{
			GRPC:                           fmt.Sprintf("%s:%d", host, port),
			Interval:                       "10s",
			Timeout:                        "5s",
			DeregisterCriticalServiceAfter: "1m",
		},
	}

	if err := r.client.Agent().ServiceRegister(registration); err != nil {
		return "", fmt.Errorf("register service %s: %w", serviceName, err)
	}

	return instanceID, nil
}

// Deregister removes a previously registered instance.
func (r *Registry) Deregister(instanceID string) error {
	return r.client.Agent().ServiceDeregister(instanceID)
}
