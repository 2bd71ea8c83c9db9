// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package container

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeExecutor answers LookPath and RunSilent from tables and delegates
// RunPiped to a function.
type fakeExecutor struct {
	onPath  map[string]bool
	succeed map[string]bool // "bin arg1 arg2" -> RunSilent succeeds
	piped   func(name string, args []string, stdin io.Reader, stdout, stderr io.Writer) error
}

func (f *fakeExecutor) LookPath(file string) (string, error) {
	if f.onPath[file] {
		return "/usr/bin/" + file, nil
	}
	return "", errors.New("not found: " + file)
}

func (f *fakeExecutor) RunSilent(_ context.Context, name string, args ...string) error {
	key := name + " " + strings.Join(args, " ")
	if f.succeed[key] {
		return nil
	}
	return errors.New("command failed: " + key)
}

func (f *fakeExecutor) RunPiped(_ context.Context, name string, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	if f.piped != nil {
		return f.piped(name, args, stdin, stdout, stderr)
	}
	return nil
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name    string
		exec    *fakeExecutor
		want    string
		wantErr bool
	}{
		{
			name: "docker",
			exec: &fakeExecutor{onPath: map[string]bool{"docker": true}, succeed: map[string]bool{"docker info": true}},
			want: "docker",
		},
		{
			name: "podman when docker missing",
			exec: &fakeExecutor{onPath: map[string]bool{"podman": true}, succeed: map[string]bool{"podman info": true}},
			want: "podman",
		},
		{
			name: "docker info fails",
			exec: &fakeExecutor{
				onPath:  map[string]bool{"docker": true, "podman": true},
				succeed: map[string]bool{"podman info": true},
			},
			want: "podman",
		},
		{
			name: "docker preferred",
			exec: &fakeExecutor{
				onPath:  map[string]bool{"docker": true, "podman": true},
				succeed: map[string]bool{"docker info": true, "podman info": true},
			},
			want: "docker",
		},
		{
			name:    "none",
			exec:    &fakeExecutor{},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt, err := detect(context.Background(), tt.exec)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "no container runtime available")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, rt.Name())
		})
	}
}

func TestImageExists(t *testing.T) {
	const image = "mddoc-office:latest"
	ctx := context.Background()

	docker := newDocker(&fakeExecutor{succeed: map[string]bool{"docker image inspect " + image: true}})
	assert.NoError(t, docker.ImageExists(ctx, image))

	podman := newPodman(&fakeExecutor{succeed: map[string]bool{"podman image exists " + image: true}})
	assert.NoError(t, podman.ImageExists(ctx, image))

	err := newDocker(&fakeExecutor{}).ImageExists(ctx, image)
	require.Error(t, err)
	assert.Contains(t, err.Error(), image)
}

func TestRun(t *testing.T) {
	var gotName string
	var gotArgs []string
	e := &fakeExecutor{piped: func(name string, args []string, stdin io.Reader, stdout, _ io.Writer) error {
		gotName, gotArgs = name, args
		data, err := io.ReadAll(stdin)
		if err != nil {
			return err
		}
		_, err = stdout.Write(append([]byte("converted:"), data...))
		return err
	}}

	var out bytes.Buffer
	err := newPodman(e).Run(context.Background(), "img", []string{"--to", "pdf"}, strings.NewReader("docx"), &out)
	require.NoError(t, err)

	assert.Equal(t, "podman", gotName)
	assert.Equal(t, []string{"run", "--rm", "-i", "--network", "none", "img", "--to", "pdf"}, gotArgs)
	assert.Equal(t, "converted:docx", out.String())
}

func TestRunFailureIncludesStderr(t *testing.T) {
	e := &fakeExecutor{piped: func(_ string, _ []string, _ io.Reader, _, stderr io.Writer) error {
		io.WriteString(stderr, "soffice crashed\n")
		return errors.New("exit status 1")
	}}

	err := newDocker(e).Run(context.Background(), "img", nil, strings.NewReader(""), io.Discard)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "running docker container img")
	assert.Contains(t, err.Error(), "soffice crashed")
}
