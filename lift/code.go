package lift

import (
	"sort"

	"github.com/go-interpreter/classlift/classfile"
)

// ExitKind discriminates how control leaves a Block.
type ExitKind int

const (
	// ExitFallthrough: execution falls into the next block with no branch
	// instruction (the block simply ran out of instructions before a jump).
	ExitFallthrough ExitKind = iota
	// ExitJump: an unconditional goto/jsr to a single successor, or a
	// SwitchJump's successors, one per target.
	ExitJump
	// ExitBranch: a conditional jump with two successors, taken then
	// fallthrough, in that order in Exit.Targets.
	ExitBranch
	// ExitReturn: a return/*return instruction; no successors.
	ExitReturn
	// ExitThrow: an athrow instruction; no successors (exception-handler
	// edges are out of scope, §9 Open Question #1).
	ExitThrow
)

// Exit describes how a Block's last instruction transfers control.
type Exit struct {
	Kind    ExitKind
	Targets []int // block indices, empty for ExitReturn/ExitThrow
}

// Block is a maximal straight-line run of instructions: no instruction
// except the last branches, and no instruction except the first is the
// target of a jump.
type Block struct {
	Start int // instruction index, inclusive
	End   int // instruction index, exclusive
	Exit  Exit
	Preds []int // predecessor block indices
}

// Code is the result of lifting one method's raw bytecode: a flat
// instruction list plus the basic-block graph over it.
type Code struct {
	Instructions []Instruction
	// ByteOffsets[i] is the byte offset of Instructions[i] within the
	// original code array.
	ByteOffsets []int
	Blocks      []Block
}

// LiftMethod decodes and lifts a method's Code attribute, if it has one. It
// returns (nil, false) for abstract/native methods that carry no code; class
// is unused by the lift itself but kept in the signature as the natural call
// shape for a caller walking class.Methods.
func LiftMethod(class *classfile.ClassFile, method *classfile.MethodInfo) (*Code, bool, error) {
	_ = class
	ca, ok := method.Code()
	if !ok {
		return nil, false, nil
	}
	c, err := LiftCode(ca)
	if err != nil {
		return nil, true, err
	}
	return c, true, nil
}

// LiftCode runs the three-pass lift over one method's raw Code attribute:
// decode instructions, resolve jump targets, and build the basic-block graph
// (§3, §4.5, §4.6). A failure at any instruction aborts the whole method's
// lift — it never poisons the enclosing class-level parse, since classfile's
// parsing of the Code attribute is already complete by the time this runs.
func LiftCode(raw *classfile.CodeAttribute) (*Code, error) {
	code := raw.Code
	// Pass 1: decode every instruction in byte order, recording each one's
	// starting byte offset and building the byte-offset -> instruction-index
	// map jump resolution needs.
	var instrs []Instruction
	var offsets []int
	byteToIndex := make(map[int]int)

	pos := 0
	for pos < len(code) {
		byteToIndex[pos] = len(instrs)
		in, err := DecodeInstruction(code, pos)
		if err != nil {
			return nil, err
		}
		instrs = append(instrs, in)
		offsets = append(offsets, pos)
		pos += in.Size()
	}

	// Pass 2: resolve every jump operand's byte-relative offset to an
	// instruction index, and collect the set of instruction indices that
	// begin a new block (jump targets, and the instruction following any
	// branch/jump/return/throw).
	splits := map[int]bool{0: true}
	for i, in := range instrs {
		switch v := in.(type) {
		case Jump:
			idx, err := resolveTarget(byteToIndex, offsets[i], v.Target)
			if err != nil {
				return nil, err
			}
			v.Target.Resolve(uint32(idx))
			instrs[i] = v
			splits[idx] = true
			if i+1 < len(instrs) {
				splits[i+1] = true
			}
		case CmpJump:
			idx, err := resolveTarget(byteToIndex, offsets[i], v.Target)
			if err != nil {
				return nil, err
			}
			v.Target.Resolve(uint32(idx))
			instrs[i] = v
			splits[idx] = true
			if i+1 < len(instrs) {
				splits[i+1] = true
			}
		case ZeroCmpJump:
			idx, err := resolveTarget(byteToIndex, offsets[i], v.Target)
			if err != nil {
				return nil, err
			}
			v.Target.Resolve(uint32(idx))
			instrs[i] = v
			splits[idx] = true
			if i+1 < len(instrs) {
				splits[i+1] = true
			}
		case SwitchJump:
			for j := range v.Targets {
				idx, err := resolveTarget(byteToIndex, offsets[i], v.Targets[j])
				if err != nil {
					return nil, err
				}
				v.Targets[j].Resolve(uint32(idx))
				splits[idx] = true
			}
			instrs[i] = v
			if i+1 < len(instrs) {
				splits[i+1] = true
			}
		case Return:
			if i+1 < len(instrs) {
				splits[i+1] = true
			}
		}
		if _, ok := in.(Throw); ok {
			if i+1 < len(instrs) {
				splits[i+1] = true
			}
		}
	}

	// Pass 3: build blocks from the sorted split points, then attach each
	// block's Exit by inspecting its final instruction, and finally fill in
	// predecessor sets from every block's resolved successors.
	starts := make([]int, 0, len(splits))
	for s := range splits {
		starts = append(starts, s)
	}
	sort.Ints(starts)

	blocks := make([]Block, 0, len(starts))
	for i, start := range starts {
		end := len(instrs)
		if i+1 < len(starts) {
			end = starts[i+1]
		}
		blocks = append(blocks, Block{Start: start, End: end})
	}

	indexToBlock := make(map[int]int, len(blocks))
	for bi, b := range blocks {
		indexToBlock[b.Start] = bi
	}

	for bi := range blocks {
		b := &blocks[bi]
		if b.Start >= b.End {
			b.Exit = Exit{Kind: ExitFallthrough}
			continue
		}
		last := instrs[b.End-1]
		switch v := last.(type) {
		case Jump:
			idx, _ := v.Target.Index()
			b.Exit = Exit{Kind: ExitJump, Targets: []int{indexToBlock[int(idx)]}}
		case CmpJump:
			idx, _ := v.Target.Index()
			b.Exit = Exit{Kind: ExitBranch, Targets: []int{indexToBlock[int(idx)], fallThroughBlockIndex(blocks, b.End)}}
		case ZeroCmpJump:
			idx, _ := v.Target.Index()
			b.Exit = Exit{Kind: ExitBranch, Targets: []int{indexToBlock[int(idx)], fallThroughBlockIndex(blocks, b.End)}}
		case SwitchJump:
			targets := make([]int, 0, len(v.Targets))
			for _, t := range v.Targets {
				idx, _ := t.Index()
				targets = append(targets, indexToBlock[int(idx)])
			}
			b.Exit = Exit{Kind: ExitJump, Targets: targets}
		case Return:
			b.Exit = Exit{Kind: ExitReturn}
		case Throw:
			b.Exit = Exit{Kind: ExitThrow}
		default:
			if next, ok := indexToBlock[b.End]; ok {
				b.Exit = Exit{Kind: ExitFallthrough, Targets: []int{next}}
			} else {
				b.Exit = Exit{Kind: ExitFallthrough}
			}
		}
	}

	for bi := range blocks {
		for _, t := range blocks[bi].Exit.Targets {
			blocks[t].Preds = append(blocks[t].Preds, bi)
		}
	}

	return &Code{Instructions: instrs, ByteOffsets: offsets, Blocks: blocks}, nil
}

// fallThroughBlockIndex finds the block starting at instruction index end,
// the fallthrough successor of a conditional branch ending right before it.
func fallThroughBlockIndex(blocks []Block, end int) int {
	for i, b := range blocks {
		if b.Start == end {
			return i
		}
	}
	return -1
}

func resolveTarget(byteToIndex map[int]int, instrByteOffset int, t JumpTarget) (int, error) {
	off, ok := t.Offset()
	if !ok {
		return 0, nil
	}
	target := instrByteOffset + int(off)
	idx, ok := byteToIndex[target]
	if !ok {
		return 0, JumpOutOfRangeError{ByteAddr: target}
	}
	return idx, nil
}
