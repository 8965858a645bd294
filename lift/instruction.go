package lift

import (
	"github.com/go-interpreter/classlift/opcode"
)

// Instruction is the closed sum of decoded instruction shapes (§3). Variants
// group opcodes by operand shape, not by individual opcode — e.g. every
// arithmetic opcode decodes to Math, distinguished only by its raw Opcode().
type Instruction interface {
	// Opcode returns the raw canonical opcode byte, for faithful printing
	// and for downstream code that needs to tell apart instructions sharing
	// a variant (e.g. iadd vs ladd, both Math).
	Opcode() byte
	// Size returns the number of bytes this instruction occupies in the
	// bytecode stream, including the opcode byte itself.
	Size() int
	instruction()
}

type base struct {
	Op  byte
	Len int
}

func (b base) Opcode() byte { return b.Op }
func (b base) Size() int    { return b.Len }

type (
	Nop               struct{ base }
	Value             struct{ base }
	GetArrayLength    struct{ base }
	Stack             struct{ base }
	Math              struct{ base }
	Conversion        struct{ base }
	Return            struct{ base }
	ArrayLoad         struct{ base }
	ArrayStore        struct{ base }
	Compare           struct{ base }
	Monitor           struct{ base }

	Throw struct {
		base
		PoolPos uint16
	}
	LoadConstant struct {
		base
		PoolIndex uint16
	}
	LoadConstantWide struct {
		base
		PoolIndex uint16
	}
	PushByte struct {
		base
		Value int8
	}
	PushShort struct {
		base
		Value int16
	}
	Increment struct {
		base
		Var    uint16
		Amount int8
	}
	Load struct {
		base
		Var uint16
	}
	Store struct {
		base
		Var uint16
	}
	Cast struct {
		base
		PoolPos uint16
	}
	InstanceOf struct {
		base
		PoolPos uint16
	}
	CmpJump struct {
		base
		Target JumpTarget
	}
	ZeroCmpJump struct {
		base
		Target JumpTarget
	}
	SwitchJump struct {
		base
		Targets []JumpTarget
	}
	Jump struct {
		base
		Target JumpTarget
	}
	New struct {
		base
		PoolPos uint16
	}
	NewPrimitiveArray struct {
		base
		ElementKind byte
	}
	GetField struct {
		base
		PoolPos uint16
	}
	GetStaticField struct {
		base
		PoolPos uint16
	}
	PutField struct {
		base
		PoolPos uint16
	}
	PutStaticField struct {
		base
		PoolPos uint16
	}
	InvokeMethod struct {
		base
		PoolPos uint16
	}
)

func (Nop) instruction()               {}
func (Value) instruction()             {}
func (GetArrayLength) instruction()    {}
func (Stack) instruction()             {}
func (Math) instruction()              {}
func (Conversion) instruction()        {}
func (Return) instruction()            {}
func (ArrayLoad) instruction()         {}
func (ArrayStore) instruction()        {}
func (Compare) instruction()           {}
func (Monitor) instruction()           {}
func (Throw) instruction()             {}
func (LoadConstant) instruction()      {}
func (LoadConstantWide) instruction()  {}
func (PushByte) instruction()          {}
func (PushShort) instruction()         {}
func (Increment) instruction()         {}
func (Load) instruction()              {}
func (Store) instruction()             {}
func (Cast) instruction()              {}
func (InstanceOf) instruction()        {}
func (CmpJump) instruction()           {}
func (ZeroCmpJump) instruction()       {}
func (SwitchJump) instruction()        {}
func (Jump) instruction()              {}
func (New) instruction()               {}
func (NewPrimitiveArray) instruction() {}
func (GetField) instruction()          {}
func (GetStaticField) instruction()    {}
func (PutField) instruction()          {}
func (PutStaticField) instruction()    {}
func (InvokeMethod) instruction()      {}

// byteCursor is a tiny big-endian cursor over one method's raw code bytes,
// local to instruction decoding; it has no relation to classfile's internal
// reader (a different package's unexported type) but follows the same
// bounds-checked-read discipline.
type byteCursor struct {
	b   []byte
	pos int
}

func (c *byteCursor) remaining() int { return len(c.b) - c.pos }

func (c *byteCursor) u8() (byte, error) {
	if c.remaining() < 1 {
		return 0, ErrTruncatedCode{Offset: c.pos}
	}
	v := c.b[c.pos]
	c.pos++
	return v, nil
}

func (c *byteCursor) i8() (int8, error) {
	v, err := c.u8()
	return int8(v), err
}

func (c *byteCursor) u16() (uint16, error) {
	if c.remaining() < 2 {
		return 0, ErrTruncatedCode{Offset: c.pos}
	}
	v := uint16(c.b[c.pos])<<8 | uint16(c.b[c.pos+1])
	c.pos += 2
	return v, nil
}

func (c *byteCursor) i16() (int16, error) {
	v, err := c.u16()
	return int16(v), err
}

func (c *byteCursor) i32() (int32, error) {
	if c.remaining() < 4 {
		return 0, ErrTruncatedCode{Offset: c.pos}
	}
	v := int32(uint32(c.b[c.pos])<<24 | uint32(c.b[c.pos+1])<<16 | uint32(c.b[c.pos+2])<<8 | uint32(c.b[c.pos+3]))
	c.pos += 4
	return v, nil
}

// DecodeInstruction decodes a single instruction starting at code[bytePos].
// It returns the decoded Instruction, whose Size() includes the opcode byte
// itself (§4.5).
func DecodeInstruction(code []byte, bytePos int) (Instruction, error) {
	if bytePos >= len(code) {
		return nil, ErrTruncatedCode{Offset: bytePos}
	}
	op := code[bytePos]
	c := &byteCursor{b: code, pos: bytePos + 1}

	mk := func(size int) base { return base{Op: op, Len: size} }

	switch op {
	case opcode.Nop:
		return Nop{mk(1)}, nil

	case opcode.AconstNull, opcode.IconstM1,
		opcode.Iconst0, opcode.Iconst1, opcode.Iconst2, opcode.Iconst3, opcode.Iconst4, opcode.Iconst5,
		opcode.Lconst0, opcode.Lconst1,
		opcode.Fconst0, opcode.Fconst1, opcode.Fconst2,
		opcode.Dconst0, opcode.Dconst1:
		return Value{mk(1)}, nil

	case opcode.Arraylength:
		return GetArrayLength{mk(1)}, nil

	case opcode.Pop, opcode.Pop2, opcode.Dup, opcode.DupX1, opcode.DupX2,
		opcode.Dup2, opcode.Dup2X1, opcode.Dup2X2, opcode.Swap:
		return Stack{mk(1)}, nil

	case opcode.Iadd, opcode.Ladd, opcode.Fadd, opcode.Dadd,
		opcode.Isub, opcode.Lsub, opcode.Fsub, opcode.Dsub,
		opcode.Imul, opcode.Lmul, opcode.Fmul, opcode.Dmul,
		opcode.Idiv, opcode.Ldiv, opcode.Fdiv, opcode.Ddiv,
		opcode.Irem, opcode.Lrem, opcode.Frem, opcode.Drem,
		opcode.Ineg, opcode.Lneg, opcode.Fneg, opcode.Dneg,
		opcode.Ishl, opcode.Lshl, opcode.Ishr, opcode.Lshr,
		opcode.Iushr, opcode.Lushr,
		opcode.Iand, opcode.Land, opcode.Ior, opcode.Lor, opcode.Ixor, opcode.Lxor:
		return Math{mk(1)}, nil

	case opcode.I2l, opcode.I2f, opcode.I2d, opcode.L2i, opcode.L2f, opcode.L2d,
		opcode.F2i, opcode.F2l, opcode.F2d, opcode.D2i, opcode.D2l, opcode.D2f,
		opcode.I2b, opcode.I2c, opcode.I2s:
		return Conversion{mk(1)}, nil

	case opcode.Ireturn, opcode.Lreturn, opcode.Freturn, opcode.Dreturn, opcode.Areturn, opcode.Return:
		return Return{mk(1)}, nil

	case opcode.Athrow:
		v, err := c.u16()
		return Throw{mk(3), v}, err

	case opcode.Ldc:
		v, err := c.u8()
		return LoadConstant{mk(2), uint16(v)}, err
	case opcode.LdcW, opcode.Ldc2W:
		v, err := c.u16()
		return LoadConstantWide{mk(3), v}, err

	case opcode.Bipush:
		v, err := c.i8()
		return PushByte{mk(2), v}, err
	case opcode.Sipush:
		v, err := c.i16()
		return PushShort{mk(3), v}, err

	case opcode.Iinc:
		v, err := c.u8()
		if err != nil {
			return nil, err
		}
		amt, err := c.i8()
		return Increment{mk(3), uint16(v), amt}, err

	case opcode.Iload, opcode.Lload, opcode.Fload, opcode.Dload, opcode.Aload:
		v, err := c.u8()
		return Load{mk(2), uint16(v)}, err
	case opcode.Iload0, opcode.Iload1, opcode.Iload2, opcode.Iload3:
		return Load{base{Op: opcode.Iload, Len: 1}, uint16(op - opcode.Iload0)}, nil
	case opcode.Lload0, opcode.Lload1, opcode.Lload2, opcode.Lload3:
		return Load{base{Op: opcode.Lload, Len: 1}, uint16(op - opcode.Lload0)}, nil
	case opcode.Fload0, opcode.Fload1, opcode.Fload2, opcode.Fload3:
		return Load{base{Op: opcode.Fload, Len: 1}, uint16(op - opcode.Fload0)}, nil
	case opcode.Dload0, opcode.Dload1, opcode.Dload2, opcode.Dload3:
		return Load{base{Op: opcode.Dload, Len: 1}, uint16(op - opcode.Dload0)}, nil
	case opcode.Aload0, opcode.Aload1, opcode.Aload2, opcode.Aload3:
		return Load{base{Op: opcode.Aload, Len: 1}, uint16(op - opcode.Aload0)}, nil

	case opcode.Iaload, opcode.Laload, opcode.Faload, opcode.Daload,
		opcode.Aaload, opcode.Baload, opcode.Caload, opcode.Saload:
		return ArrayLoad{mk(1)}, nil

	case opcode.Istore, opcode.Lstore, opcode.Fstore, opcode.Dstore, opcode.Astore:
		v, err := c.u8()
		return Store{mk(2), uint16(v)}, err
	case opcode.Istore0, opcode.Istore1, opcode.Istore2, opcode.Istore3:
		return Store{base{Op: opcode.Istore, Len: 1}, uint16(op - opcode.Istore0)}, nil
	case opcode.Lstore0, opcode.Lstore1, opcode.Lstore2, opcode.Lstore3:
		return Store{base{Op: opcode.Lstore, Len: 1}, uint16(op - opcode.Lstore0)}, nil
	case opcode.Fstore0, opcode.Fstore1, opcode.Fstore2, opcode.Fstore3:
		return Store{base{Op: opcode.Fstore, Len: 1}, uint16(op - opcode.Fstore0)}, nil
	case opcode.Dstore0, opcode.Dstore1, opcode.Dstore2, opcode.Dstore3:
		return Store{base{Op: opcode.Dstore, Len: 1}, uint16(op - opcode.Dstore0)}, nil
	case opcode.Astore0, opcode.Astore1, opcode.Astore2, opcode.Astore3:
		return Store{base{Op: opcode.Astore, Len: 1}, uint16(op - opcode.Astore0)}, nil

	case opcode.Iastore, opcode.Lastore, opcode.Fastore, opcode.Dastore,
		opcode.Aastore, opcode.Bastore, opcode.Castore, opcode.Sastore:
		return ArrayStore{mk(1)}, nil

	case opcode.Lcmp, opcode.Fcmpl, opcode.Fcmpg, opcode.Dcmpl, opcode.Dcmpg:
		return Compare{mk(1)}, nil

	case opcode.Checkcast:
		v, err := c.u16()
		return Cast{mk(3), v}, err
	case opcode.Instanceof:
		v, err := c.u16()
		return InstanceOf{mk(3), v}, err

	case opcode.IfIcmpeq, opcode.IfIcmpne, opcode.IfIcmplt, opcode.IfIcmpge,
		opcode.IfIcmpgt, opcode.IfIcmple, opcode.IfAcmpeq, opcode.IfAcmpne:
		off, err := c.i16()
		return CmpJump{mk(3), NewJumpTarget(int32(off))}, err

	case opcode.Ifeq, opcode.Ifne, opcode.Iflt, opcode.Ifge, opcode.Ifgt, opcode.Ifle,
		opcode.Ifnull, opcode.Ifnonnull:
		off, err := c.i16()
		return ZeroCmpJump{mk(3), NewJumpTarget(int32(off))}, err

	case opcode.Goto, opcode.Jsr:
		off, err := c.i16()
		return Jump{mk(3), NewJumpTarget(int32(off))}, err
	case opcode.GotoW, opcode.JsrW:
		off, err := c.i32()
		return Jump{mk(5), NewJumpTarget(off)}, err

	case opcode.New, opcode.Anewarray:
		v, err := c.u16()
		return New{mk(3), v}, err
	case opcode.Newarray:
		v, err := c.u8()
		return NewPrimitiveArray{mk(2), v}, err

	case opcode.Getfield:
		v, err := c.u16()
		return GetField{mk(3), v}, err
	case opcode.Getstatic:
		v, err := c.u16()
		return GetStaticField{mk(3), v}, err
	case opcode.Putfield:
		v, err := c.u16()
		return PutField{mk(3), v}, err
	case opcode.Putstatic:
		v, err := c.u16()
		return PutStaticField{mk(3), v}, err

	case opcode.Invokevirtual, opcode.Invokespecial, opcode.Invokestatic:
		v, err := c.u16()
		return InvokeMethod{mk(3), v}, err
	case opcode.Invokeinterface:
		v, err := c.u16()
		if err != nil {
			return nil, err
		}
		// count and a reserved zero byte, both ignored: arity is recovered
		// from the resolved method descriptor instead (§4.7 InvokeMethod).
		if _, err := c.u8(); err != nil {
			return nil, err
		}
		if _, err := c.u8(); err != nil {
			return nil, err
		}
		return InvokeMethod{mk(5), v}, nil
	case opcode.Invokedynamic:
		v, err := c.u16()
		if err != nil {
			return nil, err
		}
		if _, err := c.u8(); err != nil {
			return nil, err
		}
		if _, err := c.u8(); err != nil {
			return nil, err
		}
		return InvokeMethod{mk(5), v}, nil

	case opcode.Monitorenter, opcode.Monitorexit:
		return Monitor{mk(1)}, nil

	case opcode.Wide, opcode.Tableswitch, opcode.Lookupswitch, opcode.Ret, opcode.Multianewarray:
		return nil, UnsupportedOpcodeError{Op: op, Offset: bytePos}

	default:
		return nil, UnknownOpcodeError{Op: op, Offset: bytePos}
	}
}
