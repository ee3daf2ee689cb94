package pgrepo

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestConnectWithRetryGivesUpAfterMaxAttempts(t *testing.T) {
	l := logrus.New()
	l.SetOutput(io.Discard)

	errChan := make(chan error, 1)
	go func() {
		_, err := connectWithRetry(context.Background(), "://not-a-dsn", l, 2, time.Millisecond)
		errChan <- err
	}()

	select {
	case err := <-errChan:
		require.Error(t, err)
		require.Contains(t, err.Error(), "after 2 attempts")
	case <-time.After(5 * time.Second):
		t.Fatal("connectWithRetry kept retrying past the attempt limit")
	}
}

func TestConnectWithRetryStopsOnContextCancel(t *testing.T) {
	l := logrus.New()
	l.SetOutput(io.Discard)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := connectWithRetry(ctx, "://not-a-dsn", l, 30, time.Millisecond)
	require.ErrorContains(t, err, context.Canceled.Error())
}
