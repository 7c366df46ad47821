//go:build integration

// Package testutil runs a MongoDB testcontainer shared by a package's integration tests.
package testutil

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
)

const mongoImage = "mongo:7.0"

// MongoDBContainer wraps a running MongoDB testcontainer.
type MongoDBContainer struct {
	Container testcontainers.Container
	URI       string
}

// StartMongoDB starts a fresh MongoDB container.
func StartMongoDB(ctx context.Context) (*MongoDBContainer, error) {
	container, err := mongodb.Run(ctx, mongoImage)
	if err != nil {
		return nil, fmt.Errorf("start mongodb container: %w", err)
	}

	uri, err := container.ConnectionString(ctx)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("mongodb connection string: %w", err)
	}
	return &MongoDBContainer{Container: container, URI: uri}, nil
}

// Terminate stops the container.
func (m *MongoDBContainer) Terminate(ctx context.Context) error {
	if m == nil || m.Container == nil {
		return nil
	}
	return m.Container.Terminate(ctx)
}

var shared struct {
	once      sync.Once
	container *MongoDBContainer
	err       error
}

// RunWithMongoDB starts the shared container, runs the package's tests and
// terminates the container. Use it from TestMain:
//
//	func TestMain(m *testing.M) {
//		os.Exit(testutil.RunWithMongoDB(context.Background(), m))
//	}
func RunWithMongoDB(ctx context.Context, m *testing.M) int {
	shared.once.Do(func() {
		shared.container, shared.err = StartMongoDB(ctx)
	})
	if shared.err != nil {
		fmt.Fprintln(os.Stderr, shared.err)
		return 1
	}

	code := m.Run()

	if err := shared.container.Terminate(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "terminate shared mongodb container:", err)
	}
	return code
}

// SharedURI returns the connection string of the shared container.
func SharedURI(t testing.TB) string {
	t.Helper()
	if shared.container == nil {
		t.Fatal("shared mongodb container not started; call RunWithMongoDB from TestMain")
	}
	return shared.container.URI
}

// DatabaseName derives a unique, valid database name from a test name.
func DatabaseName(testName string) string {
	name := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', '.', ' ', '"', '$':
			return '_'
		}
		return r
	}, testName)
	if len(name) > 40 {
		name = name[:40]
	}
	return fmt.Sprintf("%s_%d", name, time.Now().UnixNano()%1_000_000)
}
