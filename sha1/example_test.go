//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package sha1_test

import (
	"fmt"

	"github.com/markkurossi/shs/sha1"
)

func ExampleSum() {
	fmt.Println(sha1.Sum([]byte("abc")))
	// Output: a9993e36 4706816a ba3e2571 7850c26c 9cd0d89d
}
