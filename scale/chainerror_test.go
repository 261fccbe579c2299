//go:build !scale_nochain

package scale

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeErrorUnwrapReachesRootCauseThroughNestedWraps(t *testing.T) {
	inner := wrapIndex(0, ErrNotEnoughData)
	outer := wrapField("Parents", inner)

	assert.ErrorIs(t, outer, ErrNotEnoughData)
	assert.Equal(t, "decoding field Parents: decoding element 0: "+ErrNotEnoughData.Error(), outer.Error())
}

func TestDecodeErrorCausesWalksFullChain(t *testing.T) {
	outer := wrapField("Parents", wrapIndex(0, ErrNotEnoughData))

	de, ok := outer.(*DecodeError)
	if !ok {
		t.Fatalf("expected *DecodeError, got %T", outer)
	}
	causes := de.Causes()
	assert.Len(t, causes, 3)
	assert.True(t, errors.Is(causes[len(causes)-1], ErrNotEnoughData))
}
