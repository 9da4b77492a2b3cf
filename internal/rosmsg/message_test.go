// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The rosmsg2asn1 Authors

package rosmsg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lounick/rosmsg2asn1/internal/translate"
)

func TestParseDefinition(t *testing.T) {
	data := []byte(`# Standard metadata for higher-level stamped data types.
uint32 seq
time stamp
string frame_id
`)

	record, err := ParseDefinition("std_msgs", "Header", data)
	require.NoError(t, err)

	assert.Equal(t, "std_msgs", record.Package)
	assert.Equal(t, "Header", record.Name)
	assert.Equal(t, []translate.FieldSpec{
		{Name: "seq", Type: "uint32"},
		{Name: "stamp", Type: "time"},
		{Name: "frame_id", Type: "string"},
	}, record.Fields)
	assert.Equal(t, "std_msgs/Header", record.FullName())
}

func TestParseDefinition_SkipsConstantsAndComments(t *testing.T) {
	data := []byte(`uint8 DEBUG=1
uint8 INFO=2
string FRAME=base_link # a string constant keeps its trailing text

uint8 level   # severity, default=2
string msg
`)

	record, err := ParseDefinition("rosgraph_msgs", "Log", data)
	require.NoError(t, err)

	assert.Equal(t, []translate.FieldSpec{
		{Name: "level", Type: "uint8"},
		{Name: "msg", Type: "string"},
	}, record.Fields)
}

func TestParseDefinition_ArrayAndComposedTypes(t *testing.T) {
	data := []byte(`geometry_msgs/Pose pose
float64[36] covariance
float32[] ranges
`)

	record, err := ParseDefinition("test_msgs", "Estimate", data)
	require.NoError(t, err)

	assert.Equal(t, []translate.FieldSpec{
		{Name: "pose", Type: "geometry_msgs/Pose"},
		{Name: "covariance", Type: "float64[36]"},
		{Name: "ranges", Type: "float32[]"},
	}, record.Fields)
}

func TestParseDefinition_Empty(t *testing.T) {
	record, err := ParseDefinition("std_msgs", "Empty", []byte("# no fields\n"))
	require.NoError(t, err)
	assert.Empty(t, record.Fields)
}

func TestParseDefinition_Malformed(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "missing field name", data: "int32\n"},
		{name: "too many tokens", data: "int32 a b\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDefinition("test_msgs", "Bad", []byte(tt.data))
			require.Error(t, err)

			var metadata *MetadataError
			require.ErrorAs(t, err, &metadata)
			assert.Equal(t, "Bad", metadata.Message)
			assert.Equal(t, 1, metadata.Line)
		})
	}
}
