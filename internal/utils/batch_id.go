// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"math/rand/v2"
	"strconv"
)

const (
	MinBatchID = 1000
	MaxBatchID = 9999
)

// IDGenerator produces batch identifiers.
type IDGenerator interface {
	Generate() string
}

// IDGeneratorFunc adapts a plain function to [IDGenerator].
type IDGeneratorFunc func() string

func (f IDGeneratorFunc) Generate() string {
	return f()
}

// BatchIDGenerator draws a uniformly random 4-digit decimal id in
// [MinBatchID, MaxBatchID]. It performs no uniqueness check.
type BatchIDGenerator struct {
}

func NewBatchIDGenerator() *BatchIDGenerator {
	return &BatchIDGenerator{}
}

func (g *BatchIDGenerator) Generate() string {
	return strconv.Itoa(MinBatchID + rand.IntN(MaxBatchID-MinBatchID+1))
}

// BatchIDSpace is the number of distinct ids BatchIDGenerator can return.
func BatchIDSpace() int {
	return MaxBatchID - MinBatchID + 1
}
