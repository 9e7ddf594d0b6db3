// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "github.com/vygonets-student/qrcore/gf256"

// addEccAndInterleave splits data -- the version's full complement of
// data codewords -- into the standard number of blocks, appends
// Reed-Solomon error correction codewords to each block, and
// interleaves all blocks (data columns, then ECC columns) into the
// final codeword sequence written to the symbol.
func addEccAndInterleave(data []byte, ver int, ecl Ecl) []byte {
	numBlocks := numErrorCorrectionBlocks[ecl][ver]
	blockEccLen := eccCodewordsPerBlock[ecl][ver]
	rawCodewords := numRawDataModules(ver) / 8
	shortBlockLen := rawCodewords / numBlocks
	numShortBlocks := numBlocks - rawCodewords%numBlocks

	divisor := gf256.Divisor(blockEccLen)
	blocks := make([][]byte, numBlocks)
	ecc := make([][]byte, numBlocks)
	k := 0
	for i := 0; i < numBlocks; i++ {
		dataLen := shortBlockLen - blockEccLen
		if i >= numShortBlocks {
			dataLen++
		}
		blocks[i] = data[k : k+dataLen]
		k += dataLen
		ecc[i] = gf256.Remainder(blocks[i], divisor)
	}
	if k != len(data) {
		internalInvariant("addEccAndInterleave: consumed %d of %d data bytes", k, len(data))
	}

	result := make([]byte, 0, rawCodewords)
	for i := 0; i < shortBlockLen-blockEccLen+1; i++ {
		for j, b := range blocks {
			if i == shortBlockLen-blockEccLen && j < numShortBlocks {
				continue
			}
			result = append(result, b[i])
		}
	}
	for i := 0; i < blockEccLen; i++ {
		for _, e := range ecc {
			result = append(result, e[i])
		}
	}
	if len(result) != rawCodewords {
		internalInvariant("addEccAndInterleave: produced %d codewords, want %d",
			len(result), rawCodewords)
	}
	return result
}
