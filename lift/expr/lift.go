package expr

import (
	"fmt"

	"github.com/go-interpreter/classlift/classfile"
	"github.com/go-interpreter/classlift/descriptor"
	"github.com/go-interpreter/classlift/lift"
	"github.com/go-interpreter/classlift/opcode"
)

// Lift symbolically runs the stack machine over every block of a lifted
// method, independently: no symbolic value flows across a block boundary,
// since a block may have more than one predecessor and this module does not
// attempt stack-state merging across them (§4.7, §9 acknowledged limit).
func Lift(code *lift.Code, pool *classfile.ConstantPool) ([]BlockExpr, error) {
	results := make([]BlockExpr, 0, len(code.Blocks))
	for bi, b := range code.Blocks {
		be, err := liftBlock(bi, b, code, pool)
		if err != nil {
			return nil, err
		}
		results = append(results, be)
	}
	return results, nil
}

type symStack struct {
	values []Expression
	block  int
	code   *lift.Code
}

func (s *symStack) push(e Expression) { s.values = append(s.values, e) }

func (s *symStack) pop(instrIndex int) (Expression, error) {
	if len(s.values) == 0 {
		return nil, ErrStackUnderflow{Block: s.block, InstrOffset: s.code.ByteOffsets[instrIndex]}
	}
	v := s.values[len(s.values)-1]
	s.values = s.values[:len(s.values)-1]
	return v, nil
}

func liftBlock(bi int, b lift.Block, code *lift.Code, pool *classfile.ConstantPool) (BlockExpr, error) {
	st := &symStack{block: bi, code: code}
	var stmts []Statement

	exitTrue, exitFalse := branchTargets(b)

	for i := b.Start; i < b.End; i++ {
		instr := code.Instructions[i]
		switch v := instr.(type) {
		case lift.Nop:
			stmts = append(stmts, Comment{})

		case lift.Value:
			st.push(Constant{Op: v.Opcode()})

		case lift.GetArrayLength:
			arr, err := st.pop(i)
			if err != nil {
				return BlockExpr{}, err
			}
			st.push(ArrayLength{Array: arr})

		case lift.Stack:
			if err := liftStack(st, i, v); err != nil {
				return BlockExpr{}, err
			}

		case lift.Math:
			r, err := st.pop(i)
			if err != nil {
				return BlockExpr{}, err
			}
			l, err := st.pop(i)
			if err != nil {
				return BlockExpr{}, err
			}
			st.push(Operator{Left: l, Right: r, Op: v.Opcode()})

		case lift.Conversion:
			inner, err := st.pop(i)
			if err != nil {
				return BlockExpr{}, err
			}
			st.push(Convert{Inner: inner, Op: v.Opcode()})

		case lift.Return:
			if v.Opcode() == opcode.Return {
				stmts = append(stmts, Return{})
			} else {
				val, err := st.pop(i)
				if err != nil {
					return BlockExpr{}, err
				}
				stmts = append(stmts, ReturnValue{Value: val})
			}

		case lift.Throw:
			val, err := st.pop(i)
			if err != nil {
				return BlockExpr{}, err
			}
			stmts = append(stmts, Throw{Throwable: val})

		case lift.LoadConstant:
			st.push(PoolConstant{PoolIndex: v.PoolIndex})
		case lift.LoadConstantWide:
			st.push(PoolConstant{PoolIndex: v.PoolIndex})

		case lift.PushByte:
			st.push(NumberConstant{Value: int16(v.Value)})
		case lift.PushShort:
			st.push(NumberConstant{Value: v.Value})

		case lift.Increment:
			stmts = append(stmts, IncrementStmt{Var: v.Var, Amount: v.Amount})

		case lift.Load:
			st.push(LoadVar{Var: v.Var})

		case lift.Store:
			val, err := st.pop(i)
			if err != nil {
				return BlockExpr{}, err
			}
			stmts = append(stmts, StoreVar{Var: v.Var, Value: val})

		case lift.ArrayLoad:
			idx, err := st.pop(i)
			if err != nil {
				return BlockExpr{}, err
			}
			arr, err := st.pop(i)
			if err != nil {
				return BlockExpr{}, err
			}
			st.push(ArrayLoad{Array: arr, Index: idx})

		case lift.ArrayStore:
			val, err := st.pop(i)
			if err != nil {
				return BlockExpr{}, err
			}
			idx, err := st.pop(i)
			if err != nil {
				return BlockExpr{}, err
			}
			arr, err := st.pop(i)
			if err != nil {
				return BlockExpr{}, err
			}
			stmts = append(stmts, ArrayStore{Array: arr, Index: idx, Value: val})

		case lift.Compare:
			r, err := st.pop(i)
			if err != nil {
				return BlockExpr{}, err
			}
			l, err := st.pop(i)
			if err != nil {
				return BlockExpr{}, err
			}
			st.push(Compare{Left: l, Right: r})

		case lift.Cast:
			inner, err := st.pop(i)
			if err != nil {
				return BlockExpr{}, err
			}
			st.push(Cast{Inner: inner, PoolPos: v.PoolPos})

		case lift.InstanceOf:
			inner, err := st.pop(i)
			if err != nil {
				return BlockExpr{}, err
			}
			st.push(InstanceOf{Inner: inner, PoolPos: v.PoolPos})

		case lift.CmpJump:
			r, err := st.pop(i)
			if err != nil {
				return BlockExpr{}, err
			}
			l, err := st.pop(i)
			if err != nil {
				return BlockExpr{}, err
			}
			stmts = append(stmts, If{Left: l, Right: r, TrueBlock: exitTrue, FalseBlock: exitFalse})

		case lift.ZeroCmpJump:
			val, err := st.pop(i)
			if err != nil {
				return BlockExpr{}, err
			}
			stmts = append(stmts, IfZero{Value: val, TrueBlock: exitTrue, FalseBlock: exitFalse})

		case lift.Jump:
			stmts = append(stmts, Goto{TargetBlock: exitTrue})

		case lift.New:
			st.push(New{PoolPos: v.PoolPos})

		case lift.NewPrimitiveArray:
			st.push(NewPrimArray{ElementKind: v.ElementKind})

		case lift.GetField:
			obj, err := st.pop(i)
			if err != nil {
				return BlockExpr{}, err
			}
			st.push(GetField{Object: obj, PoolPos: v.PoolPos})

		case lift.GetStaticField:
			st.push(GetStaticField{PoolPos: v.PoolPos})

		case lift.PutField:
			val, err := st.pop(i)
			if err != nil {
				return BlockExpr{}, err
			}
			obj, err := st.pop(i)
			if err != nil {
				return BlockExpr{}, err
			}
			stmts = append(stmts, PutField{Object: obj, Value: val, PoolPos: v.PoolPos})

		case lift.PutStaticField:
			val, err := st.pop(i)
			if err != nil {
				return BlockExpr{}, err
			}
			stmts = append(stmts, PutStaticField{Value: val, PoolPos: v.PoolPos})

		case lift.InvokeMethod:
			call, isVoid, err := liftInvoke(st, i, v, pool)
			if err != nil {
				return BlockExpr{}, err
			}
			if isVoid {
				stmts = append(stmts, call.(InvokeStatement))
			} else {
				st.push(call.(InvokeCall))
			}

		case lift.Monitor:
			val, err := st.pop(i)
			if err != nil {
				return BlockExpr{}, err
			}
			stmts = append(stmts, Monitor{Value: val, Enter: v.Opcode() == opcode.Monitorenter})

		default:
			return BlockExpr{}, fmt.Errorf("expr: unhandled instruction kind %T at block %d", instr, bi)
		}
	}

	return BlockExpr{Block: bi, Statements: stmts, Residual: st.values}, nil
}

// branchTargets reports the (true, false) successor block indices for a
// block ending in a conditional branch; either value is -1 if the block's
// exit isn't ExitBranch/ExitJump (harmless: only consulted by the matching
// instruction case).
func branchTargets(b lift.Block) (trueBlock, falseBlock int) {
	switch b.Exit.Kind {
	case lift.ExitBranch:
		if len(b.Exit.Targets) == 2 {
			return b.Exit.Targets[0], b.Exit.Targets[1]
		}
	case lift.ExitJump:
		if len(b.Exit.Targets) == 1 {
			return b.Exit.Targets[0], -1
		}
	}
	return -1, -1
}

// liftStack models the whole pop/dup/swap family (pop, pop2, dup, dup_x1,
// dup_x2, dup2, dup2_x1, dup2_x2, swap): every value is treated as occupying a single symbolic slot, so
// category-2 (long/double) width is not distinguished from category-1 — an
// acknowledged simplification, not a claim of JVM-accurate stack shape.
func liftStack(st *symStack, i int, instr lift.Stack) error {
	pop1 := func() (Expression, error) { return st.pop(i) }
	switch instr.Opcode() {
	case opcode.Pop:
		_, err := pop1()
		return err
	case opcode.Pop2:
		if _, err := pop1(); err != nil {
			return err
		}
		_, err := pop1()
		return err
	case opcode.Dup:
		v, err := pop1()
		if err != nil {
			return err
		}
		st.push(v)
		st.push(v)
		return nil
	case opcode.Swap:
		b, err := pop1()
		if err != nil {
			return err
		}
		a, err := pop1()
		if err != nil {
			return err
		}
		st.push(b)
		st.push(a)
		return nil
	case opcode.DupX1:
		b, err := pop1()
		if err != nil {
			return err
		}
		a, err := pop1()
		if err != nil {
			return err
		}
		st.push(b)
		st.push(a)
		st.push(b)
		return nil
	case opcode.DupX2:
		c, err := pop1()
		if err != nil {
			return err
		}
		b, err := pop1()
		if err != nil {
			return err
		}
		a, err := pop1()
		if err != nil {
			return err
		}
		st.push(c)
		st.push(a)
		st.push(b)
		st.push(c)
		return nil
	case opcode.Dup2:
		b, err := pop1()
		if err != nil {
			return err
		}
		a, err := pop1()
		if err != nil {
			return err
		}
		st.push(a)
		st.push(b)
		st.push(a)
		st.push(b)
		return nil
	case opcode.Dup2X1:
		c, err := pop1()
		if err != nil {
			return err
		}
		b, err := pop1()
		if err != nil {
			return err
		}
		a, err := pop1()
		if err != nil {
			return err
		}
		st.push(b)
		st.push(c)
		st.push(a)
		st.push(b)
		st.push(c)
		return nil
	case opcode.Dup2X2:
		d, err := pop1()
		if err != nil {
			return err
		}
		c, err := pop1()
		if err != nil {
			return err
		}
		b, err := pop1()
		if err != nil {
			return err
		}
		a, err := pop1()
		if err != nil {
			return err
		}
		st.push(c)
		st.push(d)
		st.push(a)
		st.push(b)
		st.push(c)
		st.push(d)
		return nil
	default:
		return fmt.Errorf("expr: unhandled stack opcode %#02x", instr.Opcode())
	}
}

// liftInvoke resolves the callee's method descriptor to determine argument
// count and receiver presence, pops operands accordingly, and returns either
// an InvokeCall (non-void) or InvokeStatement (void) boxed as any — the
// caller checks isVoid to know which.
func liftInvoke(st *symStack, i int, instr lift.InvokeMethod, pool *classfile.ConstantPool) (result any, isVoid bool, err error) {
	mt, hasReceiver, err := resolveMethodDescriptor(pool, instr.Opcode(), instr.PoolPos)
	if err != nil {
		return nil, false, err
	}

	args := make([]Expression, len(mt.Params))
	for idx := len(mt.Params) - 1; idx >= 0; idx-- {
		v, err := st.pop(i)
		if err != nil {
			return nil, false, err
		}
		args[idx] = v
	}

	var receiver Expression
	if hasReceiver {
		receiver, err = st.pop(i)
		if err != nil {
			return nil, false, err
		}
	}

	isVoid = mt.ReturnType.Kind == descriptor.KindVoid
	if isVoid {
		return InvokeStatement{PoolPos: instr.PoolPos, Receiver: receiver, Args: args}, true, nil
	}
	return InvokeCall{PoolPos: instr.PoolPos, Receiver: receiver, Args: args}, false, nil
}

func resolveMethodDescriptor(pool *classfile.ConstantPool, op byte, poolPos uint16) (descriptor.MethodType, bool, error) {
	hasReceiver := op != opcode.Invokestatic && op != opcode.Invokedynamic

	entry, ok := pool.Get(poolPos)
	if !ok {
		return descriptor.MethodType{}, hasReceiver, fmt.Errorf("expr: unresolved constant pool index %d", poolPos)
	}

	var ntIndex uint16
	switch e := entry.(type) {
	case classfile.MethodRefConstant:
		ntIndex = e.NameAndTypeIndex
	case classfile.InterfaceMethodRefConstant:
		ntIndex = e.NameAndTypeIndex
	case classfile.InvokeDynamicConstant:
		ntIndex = e.NameAndTypeIndex
	default:
		return descriptor.MethodType{}, hasReceiver, fmt.Errorf("expr: pool index %d is not a method reference", poolPos)
	}

	ntEntry, ok := pool.Get(ntIndex)
	if !ok {
		return descriptor.MethodType{}, hasReceiver, fmt.Errorf("expr: unresolved name-and-type index %d", ntIndex)
	}
	nt, ok := ntEntry.(classfile.NameAndTypeConstant)
	if !ok {
		return descriptor.MethodType{}, hasReceiver, fmt.Errorf("expr: pool index %d is not a name-and-type entry", ntIndex)
	}

	descStr, ok := pool.Utf8(nt.DescriptorIndex)
	if !ok {
		return descriptor.MethodType{}, hasReceiver, fmt.Errorf("expr: descriptor index %d is not UTF8", nt.DescriptorIndex)
	}

	mt, err := descriptor.ParseMethod(descStr)
	return mt, hasReceiver, err
}
