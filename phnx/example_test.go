package phnx_test

import (
	"fmt"

	candefs "github.com/ISC-Project-Phoenix/phnx-candefs"
	"github.com/ISC-Project-Phoenix/phnx-candefs/phnx"
)

func Example() {
	frame, err := phnx.Marshal(phnx.EncoderCount{Count: 20, Velocity: 10.2})
	if err != nil {
		panic(err)
	}
	fmt.Println(frame)

	msg, err := phnx.Unmarshal(frame)
	if err != nil {
		panic(err)
	}
	switch m := msg.(type) {
	case phnx.EncoderCount:
		fmt.Printf("count=%d velocity=%.2f\n", m.Count, m.Velocity)
	}
	// Output:
	// 7 [8] 14 00 00 00 FC 03 00 00
	// count=20 velocity=10.20
}

func ExampleUnmarshal_unknown() {
	_, err := phnx.Unmarshal(candefs.Frame{ID: 0x1FF, Extended: true, Len: 0})
	fmt.Println(err != nil)
	// Output: true
}
