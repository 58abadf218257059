// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"strconv"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatchIDGenerator_Range(t *testing.T) {
	g := NewBatchIDGenerator()

	for range 10000 {
		id := g.Generate()
		require.Len(t, id, 4)

		n, err := strconv.Atoi(id)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, MinBatchID)
		assert.LessOrEqual(t, n, MaxBatchID)
	}
}

func TestBatchIDSpace(t *testing.T) {
	assert.Equal(t, 9000, BatchIDSpace())
}

func TestIDGeneratorFunc(t *testing.T) {
	var g IDGenerator = IDGeneratorFunc(func() string { return "4242" })

	assert.Equal(t, "4242", g.Generate())
}

func TestTraceIDGenerator_ValidUUID(t *testing.T) {
	g := NewTraceIDGenerator()

	first, err := uuid.Parse(g.Generate())
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), first.Version())
	assert.NotEqual(t, g.Generate(), g.Generate())
}
