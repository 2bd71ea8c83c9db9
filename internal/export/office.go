// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export converts finished .docx packages to PDF with an office
// suite running in a container. The image reads the .docx on stdin and
// writes the PDF to stdout.
package export

import (
	"bytes"
	"context"
	"fmt"

	"github.com/pdiddy/mddoc/internal/container"
)

// DefaultImage is the office image used when none is configured.
const DefaultImage = "mddoc-office:latest"

// Office pipes documents through an office image.
type Office struct {
	runtime container.Runtime
	image   string
}

// NewOffice verifies that image exists in rt and returns an exporter. An
// empty image selects DefaultImage.
func NewOffice(ctx context.Context, rt container.Runtime, image string) (*Office, error) {
	if image == "" {
		image = DefaultImage
	}
	if err := rt.ImageExists(ctx, image); err != nil {
		return nil, fmt.Errorf("office image not available in %s: %w", rt.Name(), err)
	}
	return &Office{runtime: rt, image: image}, nil
}

// Image returns the image the exporter runs.
func (o *Office) Image() string { return o.image }

// Export converts docx bytes to PDF bytes.
func (o *Office) Export(ctx context.Context, docx []byte) ([]byte, error) {
	var out bytes.Buffer
	args := []string{"--convert-to", "pdf"}
	if err := o.runtime.Run(ctx, o.image, args, bytes.NewReader(docx), &out); err != nil {
		return nil, fmt.Errorf("exporting with %s: %w", o.image, err)
	}
	if !bytes.HasPrefix(out.Bytes(), []byte("%PDF-")) {
		return nil, fmt.Errorf("%s produced no PDF (%d bytes of output)", o.image, out.Len())
	}
	return out.Bytes(), nil
}
