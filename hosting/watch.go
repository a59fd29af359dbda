package hosting

import (
	"context"
	"time"
)

// Deployment statuses that end a watch.
const (
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

const defaultPollInterval = 5 * time.Second

// WatchDeploymentStatus polls a deployment's status until it reaches a
// terminal state or ctx is done. A non-positive interval uses the default.
// On cancellation the last observed status is returned along with ctx.Err().
func (c *Client) WatchDeploymentStatus(ctx context.Context, deploymentID string, interval time.Duration) (string, error) {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		status, err := c.GetDeploymentStatus(ctx, deploymentID)
		if err != nil {
			return "", err
		}
		if status == StatusCompleted || status == StatusFailed {
			return status, nil
		}

		select {
		case <-ctx.Done():
			return status, ctx.Err()
		case <-ticker.C:
		}
	}
}
