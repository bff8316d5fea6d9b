// cpu8080_table.go - fixed per-opcode cycle costs.
//
// License: GPLv3 or later

package main

// cycleTable gives the cycle cost returned by Execute for each of the 256
// opcode values, matching the canonical 8080 timings for the taken branch of
// every instruction. Conditional CALL, RET, and Jcc opcodes are costed at
// their taken cost unconditionally — this is the source's behavior (see
// DESIGN.md's Open Question note), not the canonical 11/5 and 17/11 splits.
// The unused slots 0x08/0x10/0x18/0x20/0x28/0x30/0x38 cost 4, same as NOP;
// 0xCB/0xD9 hold 10 and 0xDD/0xED/0xFD hold 17, but Execute panics on those
// (and on 0x08/0x10/0x18/0x28/0x38) before any cost is returned.
var cycleTable = [256]int{
	4, 10, 7, 5, 5, 5, 7, 4, 4, 10, 7, 5, 5, 5, 7, 4, // 0x0_
	4, 10, 7, 5, 5, 5, 7, 4, 4, 10, 7, 5, 5, 5, 7, 4, // 0x1_
	4, 10, 16, 5, 5, 5, 7, 4, 4, 10, 16, 5, 5, 5, 7, 4, // 0x2_
	4, 10, 13, 5, 10, 10, 10, 4, 4, 10, 13, 5, 5, 5, 7, 4, // 0x3_

	5, 5, 5, 5, 5, 5, 7, 5, 5, 5, 5, 5, 5, 5, 7, 5, // 0x4_
	5, 5, 5, 5, 5, 5, 7, 5, 5, 5, 5, 5, 5, 5, 7, 5, // 0x5_
	5, 5, 5, 5, 5, 5, 7, 5, 5, 5, 5, 5, 5, 5, 7, 5, // 0x6_
	7, 7, 7, 7, 7, 7, 7, 7, 5, 5, 5, 5, 5, 5, 7, 5, // 0x7_

	4, 4, 4, 4, 4, 4, 7, 4, 4, 4, 4, 4, 4, 4, 7, 4, // 0x8_
	4, 4, 4, 4, 4, 4, 7, 4, 4, 4, 4, 4, 4, 4, 7, 4, // 0x9_
	4, 4, 4, 4, 4, 4, 7, 4, 4, 4, 4, 4, 4, 4, 7, 4, // 0xA_
	4, 4, 4, 4, 4, 4, 7, 4, 4, 4, 4, 4, 4, 4, 7, 4, // 0xB_

	11, 10, 10, 10, 17, 11, 7, 11, 11, 10, 10, 10, 10, 17, 7, 11, // 0xC_
	11, 10, 10, 10, 17, 11, 7, 11, 11, 10, 10, 10, 10, 17, 7, 11, // 0xD_
	11, 10, 10, 18, 17, 11, 7, 11, 11, 5, 10, 5, 17, 17, 7, 11, // 0xE_
	11, 10, 10, 4, 17, 11, 7, 11, 11, 5, 10, 4, 17, 17, 7, 11, // 0xF_
}
