// cpu8080_exec.go - instruction decode and dispatch.
//
// Opcodes 0xDB (IN) and 0xD3 (OUT) are handled here as stubs that only
// advance PC by two: the Bus inspects the fetched opcode and operand and
// performs the actual port I/O before calling Execute (see bus.go), matching
// the source's intercept-before-execute sequencing (spec.md section 9's
// "Port intercept before execution" note).
//
// License: GPLv3 or later

package main

import "fmt"

// testCond evaluates one of the eight 8080 branch conditions, encoded in
// bits 3-5 of Jcc/Ccc/Rcc opcodes: 0=NZ 1=Z 2=NC 3=C 4=PO 5=PE 6=P 7=M.
func (c *CPU8080) testCond(cc byte) bool {
	switch cc & 7 {
	case 0:
		return !c.flag(flagZ)
	case 1:
		return c.flag(flagZ)
	case 2:
		return !c.flag(flagC)
	case 3:
		return c.flag(flagC)
	case 4:
		return !c.flag(flagP)
	case 5:
		return c.flag(flagP)
	case 6:
		return !c.flag(flagS)
	default:
		return c.flag(flagS)
	}
}

func (c *CPU8080) imm8() byte {
	return c.Mem.Read(c.PC + 1)
}

func (c *CPU8080) imm16() uint16 {
	return joinBytes(c.Mem.Read(c.PC+2), c.Mem.Read(c.PC+1))
}

// Execute decodes and runs one instruction at the current PC, returning its
// cycle cost from cycleTable. All arithmetic wraps modulo 2^8 or 2^16 as
// Go's unsigned overflow already does, so no instruction needs explicit
// wrapping beyond what the type system gives it.
func (c *CPU8080) Execute(opcode byte) int {
	switch {
	case opcode == 0x76: // HLT
		c.Halted = true
		c.PC++

	case opcode >= 0x40 && opcode <= 0x7F: // MOV dst,src (0x76 handled above)
		dst := (opcode >> 3) & 7
		src := opcode & 7
		c.setReg8(dst, c.reg8(src))
		c.PC++

	case opcode >= 0x80 && opcode <= 0xBF: // ALU src, src = opcode & 7
		src := c.reg8(opcode & 7)
		switch (opcode >> 3) & 7 {
		case 0:
			c.add(src)
		case 1:
			c.adc(src)
		case 2:
			c.sub(src)
		case 3:
			c.sbb(src)
		case 4:
			c.ana(src)
		case 5:
			c.xra(src)
		case 6:
			c.ora(src)
		case 7:
			c.cmp(src)
		}
		c.PC++

	case opcode&0xC7 == 0x04: // INR r
		c.inr((opcode >> 3) & 7)
		c.PC++
	case opcode&0xC7 == 0x05: // DCR r
		c.dcr((opcode >> 3) & 7)
		c.PC++
	case opcode&0xC7 == 0x06: // MVI r,d8
		c.setReg8((opcode>>3)&7, c.imm8())
		c.PC += 2

	case opcode&0xCF == 0x01: // LXI rp,d16
		c.setRP16((opcode>>4)&3, c.imm16())
		c.PC += 3
	case opcode&0xCF == 0x09: // DAD rp
		c.dad(c.rp16((opcode >> 4) & 3))
		c.PC++
	case opcode&0xCF == 0x03: // INX rp
		c.setRP16((opcode>>4)&3, c.rp16((opcode>>4)&3)+1)
		c.PC++
	case opcode&0xCF == 0x0B: // DCX rp
		c.setRP16((opcode>>4)&3, c.rp16((opcode>>4)&3)-1)
		c.PC++

	case opcode == 0x0A || opcode == 0x1A: // LDAX BC|DE
		if opcode == 0x0A {
			c.A = c.Mem.Read(c.bc())
		} else {
			c.A = c.Mem.Read(c.de())
		}
		c.PC++
	case opcode == 0x02 || opcode == 0x12: // STAX BC|DE
		if opcode == 0x02 {
			c.Mem.Write(c.bc(), c.A)
		} else {
			c.Mem.Write(c.de(), c.A)
		}
		c.PC++

	case opcode&0xCF == 0xC1: // POP rp|PSW
		c.popRPorPSW((opcode >> 4) & 3)
		c.PC++
	case opcode&0xCF == 0xC5: // PUSH rp|PSW
		c.pushRPorPSW((opcode >> 4) & 3)
		c.PC++

	case opcode&0xC7 == 0xC2: // Jcc adr
		if c.testCond((opcode >> 3) & 7) {
			c.PC = c.imm16()
		} else {
			c.PC += 3
		}
	case opcode&0xC7 == 0xC4: // Ccc adr
		target := c.imm16()
		if c.testCond((opcode >> 3) & 7) {
			c.push(c.PC + 3)
			c.PC = target
		} else {
			c.PC += 3
		}
	case opcode&0xC7 == 0xC0: // Rcc
		if c.testCond((opcode >> 3) & 7) {
			c.PC = c.pop()
		} else {
			c.PC++
		}
	case opcode&0xC7 == 0xC7: // RST n
		n := (opcode >> 3) & 7
		c.push(c.PC + 1)
		c.PC = uint16(n) * 8

	default:
		c.executeMisc(opcode)
	}
	return cycleTable[opcode]
}

// popRPorPSW pops into BC/DE/HL/PSW per the 2-bit code (3 selects PSW, not
// SP, unlike LXI/DAD/INX/DCX).
func (c *CPU8080) popRPorPSW(code byte) {
	v := c.pop()
	switch code & 3 {
	case 0:
		c.setBC(v)
	case 1:
		c.setDE(v)
	case 2:
		c.setHL(v)
	default:
		c.A = byte(v >> 8)
		c.F = byte(v)
	}
}

func (c *CPU8080) pushRPorPSW(code byte) {
	switch code & 3 {
	case 0:
		c.push(c.bc())
	case 1:
		c.push(c.de())
	case 2:
		c.push(c.hl())
	default:
		c.push(joinBytes(c.A, c.F))
	}
}

// executeMisc handles every opcode not covered by the bit-decoded groups
// above: immediate ALU forms, LDA/STA/LHLD/SHLD, XCHG/XTHL, rotates, DAA,
// STC/CMC/CMA, EI/DI, SPHL/PCHL, NOP, IN/OUT stubs, and the unimplemented
// opcode slots.
func (c *CPU8080) executeMisc(opcode byte) {
	switch opcode {
	case 0x00: // NOP
		c.PC++
	case 0x20, 0x30: // RIM/SIM, not exercised by this cabinet's ROM
		c.PC++
	case 0x08, 0x10, 0x18, 0x28, 0x38, 0xCB, 0xD9, 0xDD, 0xED, 0xFD:
		c.fatalOpcode(opcode)
	case 0x22: // SHLD adr
		addr := c.imm16()
		c.Mem.Write(addr, c.L)
		c.Mem.Write(addr+1, c.H)
		c.PC += 3
	case 0x2A: // LHLD adr
		addr := c.imm16()
		c.L = c.Mem.Read(addr)
		c.H = c.Mem.Read(addr + 1)
		c.PC += 3
	case 0x32: // STA adr
		c.Mem.Write(c.imm16(), c.A)
		c.PC += 3
	case 0x3A: // LDA adr
		c.A = c.Mem.Read(c.imm16())
		c.PC += 3
	case 0x27: // DAA
		c.daa()
		c.PC++
	case 0x07: // RLC
		c.rlc()
		c.PC++
	case 0x0F: // RRC
		c.rrc()
		c.PC++
	case 0x17: // RAL
		c.ral()
		c.PC++
	case 0x1F: // RAR
		c.rar()
		c.PC++
	case 0x2F: // CMA
		c.A = ^c.A
		c.PC++
	case 0x37: // STC
		c.setFlag(flagC, true)
		c.PC++
	case 0x3F: // CMC
		c.setFlag(flagC, !c.flag(flagC))
		c.PC++
	case 0xC3: // JMP adr
		c.PC = c.imm16()
	case 0xCD: // CALL adr
		target := c.imm16()
		c.push(c.PC + 3)
		c.PC = target
	case 0xC9: // RET
		c.PC = c.pop()
	case 0xE9: // PCHL
		c.PC = c.hl()
	case 0xE3: // XTHL
		lo := c.Mem.Read(c.SP)
		hi := c.Mem.Read(c.SP + 1)
		c.Mem.Write(c.SP, c.L)
		c.Mem.Write(c.SP+1, c.H)
		c.L, c.H = lo, hi
		c.PC++
	case 0xEB: // XCHG
		c.H, c.D = c.D, c.H
		c.L, c.E = c.E, c.L
		c.PC++
	case 0xF9: // SPHL
		c.SP = c.hl()
		c.PC++
	case 0xF3: // DI
		c.IE = false
		c.PC++
	case 0xFB: // EI
		c.IE = true
		c.PC++
	case 0xC6: // ADI d8
		c.add(c.imm8())
		c.PC += 2
	case 0xCE: // ACI d8
		c.adc(c.imm8())
		c.PC += 2
	case 0xD6: // SUI d8
		c.sub(c.imm8())
		c.PC += 2
	case 0xDE: // SBI d8
		c.sbb(c.imm8())
		c.PC += 2
	case 0xE6: // ANI d8
		c.ana(c.imm8())
		c.PC += 2
	case 0xEE: // XRI d8
		c.xra(c.imm8())
		c.PC += 2
	case 0xF6: // ORI d8
		c.ora(c.imm8())
		c.PC += 2
	case 0xFE: // CPI d8
		c.cmp(c.imm8())
		c.PC += 2
	case 0xDB, 0xD3: // IN d8 / OUT d8 - Bus already performed the transfer
		c.PC += 2
	default:
		c.fatalOpcode(opcode)
	}
}

// fatalOpcode aborts the emulator on an unimplemented opcode slot, matching
// the source's hard panic (no exception path exists for a bad opcode) and
// mirroring bus.go's unknown-port panic.
func (c *CPU8080) fatalOpcode(opcode byte) {
	panic(fmt.Sprintf("unimplemented opcode 0x%02X at 0x%04X", opcode, c.PC))
}
