// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrintResult(t *testing.T) {
	var buf bytes.Buffer
	PrintResult(&buf, []ResultField{
		{Label: "Source", Value: "data.parquet"},
		{Label: "Records", Value: "2"},
	}, "Done")

	out := buf.String()
	assert.Contains(t, out, "Source:")
	assert.Contains(t, out, "data.parquet")
	assert.Contains(t, out, "Records:")
	assert.Contains(t, out, "Done")
	assert.Contains(t, out, "✓")
}

func TestIdentifierValidator(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{"", false},
		{"models", false},
		{"_gen2", false},
		{"2gen", true},
		{"my-pkg", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			err := identifierValidator(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRequiredValidator(t *testing.T) {
	v := requiredValidator("file path")
	assert.EqualError(t, v(""), "file path is required")
	assert.NoError(t, v("x.parquet"))
}
