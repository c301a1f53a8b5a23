package codepoints_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zhimiaox/mkbcfnt/codepoints"
)

func TestParseListSortsAndAcceptsMixedRadix(t *testing.T) {
	list, err := codepoints.ParseList(strings.NewReader("65 0x20 012\n0x41"))
	require.NoError(t, err)
	assert.Equal(t, []uint16{10, 32, 65, 65}, list)
}

func TestParseListStripsBOM(t *testing.T) {
	list, err := codepoints.ParseList(strings.NewReader("﻿65 66"))
	require.NoError(t, err)
	assert.Equal(t, []uint16{65, 66}, list)
}

func TestParseListRejectsGarbage(t *testing.T) {
	_, err := codepoints.ParseList(strings.NewReader("not-a-number"))
	assert.Error(t, err)
}

func TestContainsBinarySearch(t *testing.T) {
	list := []uint16{1, 5, 10, 20}
	assert.True(t, codepoints.Contains(list, 10))
	assert.False(t, codepoints.Contains(list, 11))
}
