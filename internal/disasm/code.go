package disasm

import (
	"fmt"
	"slices"

	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrochip8/internal/opcode"
	"github.com/retroenv/retrogolib/arch/cpu/chip8"
	"github.com/retroenv/retrogolib/log"
)

const (
	dataNaming  = "_data_%04x"
	funcNaming  = "_func_%04x"
	labelNaming = "_label_%04x"
)

// addAddressToParse queues an address for tracing. Branch destinations are
// remembered for the label generation.
func (dis *Disasm) addAddressToParse(address, from uint16, isABranchDestination bool) {
	offsetInfo := dis.offsetInfo(address)
	if offsetInfo == nil {
		dis.logger.Debug("Ignoring reference outside of program",
			log.Hex("address", address), log.Hex("from", from))
		return
	}

	if isABranchDestination {
		dis.branchDestinations.Add(address)
	}
	if dis.offsetsToParseAdded.Contains(address) {
		return
	}
	dis.offsetsToParseAdded.Add(address)
	dis.offsetsToParse = append(dis.offsetsToParse, address)
}

// followExecutionFlow parses opcodes and follows the execution flow to
// identify code.
func (dis *Disasm) followExecutionFlow() {
	for len(dis.offsetsToParse) > 0 {
		address := dis.offsetsToParse[0]
		dis.offsetsToParse = dis.offsetsToParse[1:]
		dis.processOffset(address)
	}
}

func (dis *Disasm) processOffset(address uint16) {
	offsetInfo := dis.offsetInfo(address)
	if offsetInfo.IsType(CodeOffset) {
		return // already processed or inside of an instruction
	}

	next := dis.offsetInfo(address + 1)
	word, ok := dis.readWord(address)
	if !ok || next.IsType(CodeOffset) {
		return
	}

	ins := opcode.Decode(word)
	if _, unknown := ins.(opcode.Unknown); unknown {
		dis.logger.Debug("Unknown instruction, treating as data",
			log.Hex("address", address), log.Hex("opcode", word))
		return
	}

	offsetInfo.ClearType(DataOffset)
	offsetInfo.SetType(CodeOffset)
	offsetInfo.Instruction = ins
	offsetInfo.Data = dis.program[address-machine.ProgramStart : address-machine.ProgramStart+opcode.Size]
	next.ClearType(DataOffset)
	next.SetType(CodeOffset)

	dis.handleControlFlow(address, ins)
}

// handleControlFlow queues all addresses that can be executed after the
// instruction at the given address.
func (dis *Disasm) handleControlFlow(address uint16, ins opcode.Instruction) {
	nextAddress := address + opcode.Size

	switch ins := ins.(type) {
	case opcode.Jump:
		dis.addAddressToParse(ins.Address, address, true)

	case opcode.Call:
		dis.addAddressToParse(ins.Address, address, true)
		if target := dis.offsetInfo(ins.Address); target != nil {
			target.SetType(CallDestination)
		}
		dis.addAddressToParse(nextAddress, address, false)

	case opcode.Return, opcode.JumpIndexed:
		// the destination of an indexed jump is only known at runtime

	case opcode.LoadIndex:
		if target := dis.offsetInfo(ins.Address); target != nil {
			dis.branchDestinations.Add(ins.Address)
			if !target.IsType(CodeOffset) {
				target.SetType(DataOffset)
			}
		}
		dis.addAddressToParse(nextAddress, address, false)

	default:
		if chip8.SkipInstructions.Contains(ins.Name()) {
			dis.addAddressToParse(nextAddress+opcode.Size, address, false)
		}
		dis.addAddressToParse(nextAddress, address, false)
	}
}

// processJumpDestinations names all referenced addresses and updates the
// referencing instructions with the label name.
func (dis *Disasm) processJumpDestinations() {
	destinations := make([]uint16, 0, len(dis.branchDestinations))
	for dest := range dis.branchDestinations {
		destinations = append(destinations, dest)
	}
	slices.Sort(destinations)

	names := make(map[uint16]string, len(destinations))
	for _, address := range destinations {
		offsetInfo := dis.offsetInfo(address)

		// a reference into the second byte of an instruction can not be labeled
		if offsetInfo.IsType(CodeOffset) && len(offsetInfo.Data) == 0 {
			continue
		}

		name := offsetInfo.Label
		if name == "" {
			switch {
			case offsetInfo.IsType(CallDestination):
				name = fmt.Sprintf(funcNaming, address)
			case offsetInfo.IsType(CodeOffset):
				name = fmt.Sprintf(labelNaming, address)
			default:
				name = fmt.Sprintf(dataNaming, address)
			}
			offsetInfo.Label = name
		}
		names[address] = name
	}

	for i := range dis.offsets {
		offsetInfo := &dis.offsets[i]
		if offsetInfo.Instruction == nil {
			continue
		}
		if target, ok := referencedAddress(offsetInfo.Instruction); ok {
			offsetInfo.BranchingTo = names[target]
		}
	}
}

// referencedAddress returns the address operand of instructions that
// reference a fixed address.
func referencedAddress(ins opcode.Instruction) (uint16, bool) {
	switch ins := ins.(type) {
	case opcode.Jump:
		return ins.Address, true
	case opcode.Call:
		return ins.Address, true
	case opcode.LoadIndex:
		return ins.Address, true
	default:
		return 0, false
	}
}
