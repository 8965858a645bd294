// Package mnemonic names opcode bytes for human-readable output. It is
// deliberately separate from opcode: the numeric values are the
// compatibility fixed point, the names are a presentation-only convenience
// cmd/classdump depends on and nothing else does.
package mnemonic

import (
	"fmt"

	"github.com/go-interpreter/classlift/opcode"
)

var names = map[opcode.Op]string{
	opcode.Nop:             "nop",
	opcode.AconstNull:      "aconst_null",
	opcode.IconstM1:        "iconst_m1",
	opcode.Iconst0:         "iconst_0",
	opcode.Iconst1:         "iconst_1",
	opcode.Iconst2:         "iconst_2",
	opcode.Iconst3:         "iconst_3",
	opcode.Iconst4:         "iconst_4",
	opcode.Iconst5:         "iconst_5",
	opcode.Lconst0:         "lconst_0",
	opcode.Lconst1:         "lconst_1",
	opcode.Fconst0:         "fconst_0",
	opcode.Fconst1:         "fconst_1",
	opcode.Fconst2:         "fconst_2",
	opcode.Dconst0:         "dconst_0",
	opcode.Dconst1:         "dconst_1",
	opcode.Bipush:          "bipush",
	opcode.Sipush:          "sipush",
	opcode.Ldc:             "ldc",
	opcode.LdcW:            "ldc_w",
	opcode.Ldc2W:           "ldc2_w",
	opcode.Iload:           "iload",
	opcode.Lload:           "lload",
	opcode.Fload:           "fload",
	opcode.Dload:           "dload",
	opcode.Aload:           "aload",
	opcode.Iaload:          "iaload",
	opcode.Laload:          "laload",
	opcode.Faload:          "faload",
	opcode.Daload:          "daload",
	opcode.Aaload:          "aaload",
	opcode.Baload:          "baload",
	opcode.Caload:          "caload",
	opcode.Saload:          "saload",
	opcode.Istore:          "istore",
	opcode.Lstore:          "lstore",
	opcode.Fstore:          "fstore",
	opcode.Dstore:          "dstore",
	opcode.Astore:          "astore",
	opcode.Iastore:         "iastore",
	opcode.Lastore:         "lastore",
	opcode.Fastore:         "fastore",
	opcode.Dastore:         "dastore",
	opcode.Aastore:         "aastore",
	opcode.Bastore:         "bastore",
	opcode.Castore:         "castore",
	opcode.Sastore:         "sastore",
	opcode.Pop:             "pop",
	opcode.Pop2:            "pop2",
	opcode.Dup:             "dup",
	opcode.DupX1:           "dup_x1",
	opcode.DupX2:           "dup_x2",
	opcode.Dup2:            "dup2",
	opcode.Dup2X1:          "dup2_x1",
	opcode.Dup2X2:          "dup2_x2",
	opcode.Swap:            "swap",
	opcode.Iadd:            "iadd",
	opcode.Ladd:            "ladd",
	opcode.Fadd:            "fadd",
	opcode.Dadd:            "dadd",
	opcode.Isub:            "isub",
	opcode.Lsub:            "lsub",
	opcode.Fsub:            "fsub",
	opcode.Dsub:            "dsub",
	opcode.Imul:            "imul",
	opcode.Lmul:            "lmul",
	opcode.Fmul:            "fmul",
	opcode.Dmul:            "dmul",
	opcode.Idiv:            "idiv",
	opcode.Ldiv:            "ldiv",
	opcode.Fdiv:            "fdiv",
	opcode.Ddiv:            "ddiv",
	opcode.Irem:            "irem",
	opcode.Lrem:            "lrem",
	opcode.Frem:            "frem",
	opcode.Drem:            "drem",
	opcode.Ineg:            "ineg",
	opcode.Lneg:            "lneg",
	opcode.Fneg:            "fneg",
	opcode.Dneg:            "dneg",
	opcode.Ishl:            "ishl",
	opcode.Lshl:            "lshl",
	opcode.Ishr:            "ishr",
	opcode.Lshr:            "lshr",
	opcode.Iushr:           "iushr",
	opcode.Lushr:           "lushr",
	opcode.Iand:            "iand",
	opcode.Land:            "land",
	opcode.Ior:             "ior",
	opcode.Lor:             "lor",
	opcode.Ixor:            "ixor",
	opcode.Lxor:            "lxor",
	opcode.Iinc:            "iinc",
	opcode.I2l:             "i2l",
	opcode.I2f:             "i2f",
	opcode.I2d:             "i2d",
	opcode.L2i:             "l2i",
	opcode.L2f:             "l2f",
	opcode.L2d:             "l2d",
	opcode.F2i:             "f2i",
	opcode.F2l:             "f2l",
	opcode.F2d:             "f2d",
	opcode.D2i:             "d2i",
	opcode.D2l:             "d2l",
	opcode.D2f:             "d2f",
	opcode.I2b:             "i2b",
	opcode.I2c:             "i2c",
	opcode.I2s:             "i2s",
	opcode.Lcmp:            "lcmp",
	opcode.Fcmpl:           "fcmpl",
	opcode.Fcmpg:           "fcmpg",
	opcode.Dcmpl:           "dcmpl",
	opcode.Dcmpg:           "dcmpg",
	opcode.Ifeq:            "ifeq",
	opcode.Ifne:            "ifne",
	opcode.Iflt:            "iflt",
	opcode.Ifge:            "ifge",
	opcode.Ifgt:            "ifgt",
	opcode.Ifle:            "ifle",
	opcode.IfIcmpeq:        "if_icmpeq",
	opcode.IfIcmpne:        "if_icmpne",
	opcode.IfIcmplt:        "if_icmplt",
	opcode.IfIcmpge:        "if_icmpge",
	opcode.IfIcmpgt:        "if_icmpgt",
	opcode.IfIcmple:        "if_icmple",
	opcode.IfAcmpeq:        "if_acmpeq",
	opcode.IfAcmpne:        "if_acmpne",
	opcode.Goto:            "goto",
	opcode.Jsr:             "jsr",
	opcode.Ret:             "ret",
	opcode.Tableswitch:     "tableswitch",
	opcode.Lookupswitch:    "lookupswitch",
	opcode.Ireturn:         "ireturn",
	opcode.Lreturn:         "lreturn",
	opcode.Freturn:         "freturn",
	opcode.Dreturn:         "dreturn",
	opcode.Areturn:         "areturn",
	opcode.Return:          "return",
	opcode.Getstatic:       "getstatic",
	opcode.Putstatic:       "putstatic",
	opcode.Getfield:        "getfield",
	opcode.Putfield:        "putfield",
	opcode.Invokevirtual:   "invokevirtual",
	opcode.Invokespecial:   "invokespecial",
	opcode.Invokestatic:    "invokestatic",
	opcode.Invokeinterface: "invokeinterface",
	opcode.Invokedynamic:   "invokedynamic",
	opcode.New:             "new",
	opcode.Newarray:        "newarray",
	opcode.Anewarray:       "anewarray",
	opcode.Arraylength:     "arraylength",
	opcode.Athrow:          "athrow",
	opcode.Checkcast:       "checkcast",
	opcode.Instanceof:      "instanceof",
	opcode.Monitorenter:    "monitorenter",
	opcode.Monitorexit:     "monitorexit",
	opcode.Wide:            "wide",
	opcode.Multianewarray:  "multianewarray",
	opcode.Ifnull:          "ifnull",
	opcode.Ifnonnull:       "ifnonnull",
	opcode.GotoW:           "goto_w",
	opcode.JsrW:            "jsr_w",
}

// indexed-load/store mnemonics, named individually since DecodeInstruction
// collapses them into the canonical Load/Store instruction before a Name
// lookup ever sees them; kept here only so Name is total over every byte
// value that can appear in a raw, undecoded dump.
func init() {
	names[opcode.Iload0] = "iload_0"
	names[opcode.Iload1] = "iload_1"
	names[opcode.Iload2] = "iload_2"
	names[opcode.Iload3] = "iload_3"
	names[opcode.Lload0] = "lload_0"
	names[opcode.Lload1] = "lload_1"
	names[opcode.Lload2] = "lload_2"
	names[opcode.Lload3] = "lload_3"
	names[opcode.Fload0] = "fload_0"
	names[opcode.Fload1] = "fload_1"
	names[opcode.Fload2] = "fload_2"
	names[opcode.Fload3] = "fload_3"
	names[opcode.Dload0] = "dload_0"
	names[opcode.Dload1] = "dload_1"
	names[opcode.Dload2] = "dload_2"
	names[opcode.Dload3] = "dload_3"
	names[opcode.Aload0] = "aload_0"
	names[opcode.Aload1] = "aload_1"
	names[opcode.Aload2] = "aload_2"
	names[opcode.Aload3] = "aload_3"
	names[opcode.Istore0] = "istore_0"
	names[opcode.Istore1] = "istore_1"
	names[opcode.Istore2] = "istore_2"
	names[opcode.Istore3] = "istore_3"
	names[opcode.Lstore0] = "lstore_0"
	names[opcode.Lstore1] = "lstore_1"
	names[opcode.Lstore2] = "lstore_2"
	names[opcode.Lstore3] = "lstore_3"
	names[opcode.Fstore0] = "fstore_0"
	names[opcode.Fstore1] = "fstore_1"
	names[opcode.Fstore2] = "fstore_2"
	names[opcode.Fstore3] = "fstore_3"
	names[opcode.Dstore0] = "dstore_0"
	names[opcode.Dstore1] = "dstore_1"
	names[opcode.Dstore2] = "dstore_2"
	names[opcode.Dstore3] = "dstore_3"
	names[opcode.Astore0] = "astore_0"
	names[opcode.Astore1] = "astore_1"
	names[opcode.Astore2] = "astore_2"
	names[opcode.Astore3] = "astore_3"
}

// Name returns op's mnemonic, or a "unknown_0xNN"-shaped placeholder if op
// isn't a recognized opcode.
func Name(op opcode.Op) string {
	if n, ok := names[op]; ok {
		return n
	}
	return fmt.Sprintf("unknown_%#02x", op)
}
