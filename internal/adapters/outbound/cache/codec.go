// Package cache provides the domain.Cache backends used by the facet queries: an
// in-process expirable LRU and a shared Redis instance. Values are stored as
// deterministic CBOR so both backends hold identical bytes for the same value.
package cache

import (
	"fmt"
	"reflect"

	"github.com/fxamacker/cbor/v2"
)

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error

	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("cache: CBOR encoder initialization failed: " + err.Error())
	}

	decMode, err = cbor.DecOptions{
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
	}.DecMode()
	if err != nil {
		panic("cache: CBOR decoder initialization failed: " + err.Error())
	}
}

func encode(value any) ([]byte, error) {
	data, err := encMode.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("encode cache value: %w", err)
	}
	return data, nil
}

func decode(data []byte, dest any) error {
	if err := decMode.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("decode cache value: %w", err)
	}
	return nil
}
