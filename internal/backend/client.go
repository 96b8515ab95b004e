package backend

import (
	"fmt"
	"net/url"
	"strings"
	"sync"

	"k8s.io/apimachinery/pkg/runtime/schema"
	"k8s.io/client-go/kubernetes/scheme"
	"k8s.io/client-go/rest"
	"k8s.io/klog/v2"

	"github.com/Taishi66/kdash/internal/domain"
)

// Client talks to the dashboard REST API.
// It implements domain.Gateway.
type Client struct {
	mu        sync.RWMutex
	rest      rest.Interface
	serverURL string
}

// Compile-time check that Client implements domain.Gateway.
var _ domain.Gateway = (*Client)(nil)

// NewClient creates a client for the dashboard API at server.
func NewClient(server string) (*Client, error) {
	rc, err := newRESTClient(server)
	if err != nil {
		return nil, err
	}
	return &Client{rest: rc, serverURL: server}, nil
}

func (c *Client) GetServerURL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.serverURL
}

// Reconnect rebuilds the transport, dropping idle connections to the server.
func (c *Client) Reconnect() error {
	server := c.GetServerURL()
	rc, err := newRESTClient(server)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.rest = rc
	c.mu.Unlock()
	klog.V(1).Infof("reconnected to %s", server)
	return nil
}

func (c *Client) restClient() rest.Interface {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.rest
}

func newRESTClient(server string) (*rest.RESTClient, error) {
	if strings.TrimSpace(server) == "" {
		return nil, &domain.APIError{
			Type:    domain.ErrNoServer,
			Message: "No dashboard API configured.\nUse --server <url> or set 'server' in ~/.config/kdash/config.yaml",
		}
	}

	u, err := url.Parse(server)
	if err == nil && (u.Scheme != "http" && u.Scheme != "https" || u.Host == "") {
		err = fmt.Errorf("expected http(s)://host[:port], got %q", server)
	}
	if err != nil {
		return nil, &domain.APIError{
			Type:    domain.ErrBadServerURL,
			Message: fmt.Sprintf("Invalid server URL: %v", err),
			Err:     err,
		}
	}

	cfg := &rest.Config{
		Host:      server,
		APIPath:   "/",
		UserAgent: "kdash",
		// Optimize for snappy TUI
		QPS:   50,
		Burst: 100,
		ContentConfig: rest.ContentConfig{
			GroupVersion:         &schema.GroupVersion{},
			NegotiatedSerializer: scheme.Codecs.WithoutConversion(),
		},
	}
	rc, err := rest.UnversionedRESTClientFor(cfg)
	if err != nil {
		return nil, &domain.APIError{
			Type:    domain.ErrBadServerURL,
			Message: fmt.Sprintf("Unable to create the API client: %v", err),
			Err:     err,
		}
	}
	return rc, nil
}

// --- Gateway implementation ---

func (c *Client) Namespaces() domain.Fetcher[domain.NamespaceList] {
	return fetcher[domain.NamespaceList]{c}
}

func (c *Client) Pods() domain.Fetcher[domain.PodList] { return fetcher[domain.PodList]{c} }
func (c *Client) Logs() domain.Fetcher[domain.Logs]    { return fetcher[domain.Logs]{c} }
func (c *Client) Jobs() domain.Fetcher[domain.JobList] { return fetcher[domain.JobList]{c} }

func (c *Client) JobDetail() domain.Fetcher[domain.JobDetail] {
	return fetcher[domain.JobDetail]{c}
}

func (c *Client) ReplicationControllers() domain.Fetcher[domain.ReplicationControllerList] {
	return fetcher[domain.ReplicationControllerList]{c}
}

func (c *Client) ReplicationControllerDetail() domain.Fetcher[domain.ReplicationControllerDetail] {
	return fetcher[domain.ReplicationControllerDetail]{c}
}

func (c *Client) ReplicationControllerPods() domain.Fetcher[domain.ReplicationControllerPods] {
	return fetcher[domain.ReplicationControllerPods]{c}
}

func (c *Client) DaemonSets() domain.Fetcher[domain.DaemonSetList] {
	return fetcher[domain.DaemonSetList]{c}
}

func (c *Client) DaemonSetDetail() domain.Fetcher[domain.DaemonSetDetail] {
	return fetcher[domain.DaemonSetDetail]{c}
}

func (c *Client) Deployments() domain.Fetcher[domain.DeploymentList] {
	return fetcher[domain.DeploymentList]{c}
}

func (c *Client) DeploymentDetail() domain.Fetcher[domain.DeploymentDetail] {
	return fetcher[domain.DeploymentDetail]{c}
}
