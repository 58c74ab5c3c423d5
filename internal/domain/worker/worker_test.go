package worker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewWorkerConfig(t *testing.T) {
	tests := []struct {
		name string
		in   struct {
			queueName      string
			pollInterval   time.Duration
			dequeueTimeout time.Duration
		}
		want struct {
			err            error
			pollInterval   time.Duration
			dequeueTimeout time.Duration
		}
	}{
		{
			name: "Given valid queue name and intervals, When creating worker config, Then should keep them",
			in: struct {
				queueName      string
				pollInterval   time.Duration
				dequeueTimeout time.Duration
			}{
				queueName:      "pdftotext",
				pollInterval:   time.Second,
				dequeueTimeout: 3 * time.Second,
			},
			want: struct {
				err            error
				pollInterval   time.Duration
				dequeueTimeout time.Duration
			}{
				pollInterval:   time.Second,
				dequeueTimeout: 3 * time.Second,
			},
		},
		{
			name: "Given zero intervals, When creating worker config, Then should apply defaults",
			in: struct {
				queueName      string
				pollInterval   time.Duration
				dequeueTimeout time.Duration
			}{
				queueName: "pdftotext",
			},
			want: struct {
				err            error
				pollInterval   time.Duration
				dequeueTimeout time.Duration
			}{
				pollInterval:   5 * time.Second,
				dequeueTimeout: 2 * time.Second,
			},
		},
		{
			name: "Given empty queue name, When creating worker config, Then should return ErrQueueNameRequired",
			in: struct {
				queueName      string
				pollInterval   time.Duration
				dequeueTimeout time.Duration
			}{
				queueName: "",
			},
			want: struct {
				err            error
				pollInterval   time.Duration
				dequeueTimeout time.Duration
			}{
				err: ErrQueueNameRequired,
			},
		},
		{
			name: "Given negative poll interval, When creating worker config, Then should return ErrPollIntervalInvalid",
			in: struct {
				queueName      string
				pollInterval   time.Duration
				dequeueTimeout time.Duration
			}{
				queueName:    "pdftotext",
				pollInterval: -time.Second,
			},
			want: struct {
				err            error
				pollInterval   time.Duration
				dequeueTimeout time.Duration
			}{
				err: ErrPollIntervalInvalid,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config, err := NewWorkerConfig(tt.in.queueName, tt.in.pollInterval, tt.in.dequeueTimeout)

			if tt.want.err != nil {
				assert.ErrorIs(t, err, tt.want.err)
				assert.Nil(t, config)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.in.queueName, config.QueueName)
			assert.Equal(t, tt.want.pollInterval, config.PollInterval)
			assert.Equal(t, tt.want.dequeueTimeout, config.DequeueTimeout)
		})
	}
}
