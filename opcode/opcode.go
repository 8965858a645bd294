// Package opcode defines the canonical numeric values of JVM instruction
// opcodes. It is the single ground-truth table spec.md's compatibility fixed
// points (§6) require; the opcode *names* (mnemonics) are an external,
// out-of-scope concern left to the mnemonic package.
package opcode

// Op is a single JVM opcode byte.
type Op = byte

const (
	Nop         Op = 0
	AconstNull  Op = 1
	IconstM1    Op = 2
	Iconst0     Op = 3
	Iconst1     Op = 4
	Iconst2     Op = 5
	Iconst3     Op = 6
	Iconst4     Op = 7
	Iconst5     Op = 8
	Lconst0     Op = 9
	Lconst1     Op = 10
	Fconst0     Op = 11
	Fconst1     Op = 12
	Fconst2     Op = 13
	Dconst0     Op = 14
	Dconst1     Op = 15
	Bipush      Op = 16
	Sipush      Op = 17
	Ldc         Op = 18
	LdcW        Op = 19
	Ldc2W       Op = 20
	Iload       Op = 21
	Lload       Op = 22
	Fload       Op = 23
	Dload       Op = 24
	Aload       Op = 25
	Iload0      Op = 26
	Iload1      Op = 27
	Iload2      Op = 28
	Iload3      Op = 29
	Lload0      Op = 30
	Lload1      Op = 31
	Lload2      Op = 32
	Lload3      Op = 33
	Fload0      Op = 34
	Fload1      Op = 35
	Fload2      Op = 36
	Fload3      Op = 37
	Dload0      Op = 38
	Dload1      Op = 39
	Dload2      Op = 40
	Dload3      Op = 41
	Aload0      Op = 42
	Aload1      Op = 43
	Aload2      Op = 44
	Aload3      Op = 45
	Iaload      Op = 46
	Laload      Op = 47
	Faload      Op = 48
	Daload      Op = 49
	Aaload      Op = 50
	Baload      Op = 51
	Caload      Op = 52
	Saload      Op = 53
	Istore      Op = 54
	Lstore      Op = 55
	Fstore      Op = 56
	Dstore      Op = 57
	Astore      Op = 58
	Istore0     Op = 59
	Istore1     Op = 60
	Istore2     Op = 61
	Istore3     Op = 62
	Lstore0     Op = 63
	Lstore1     Op = 64
	Lstore2     Op = 65
	Lstore3     Op = 66
	Fstore0     Op = 67
	Fstore1     Op = 68
	Fstore2     Op = 69
	Fstore3     Op = 70
	Dstore0     Op = 71
	Dstore1     Op = 72
	Dstore2     Op = 73
	Dstore3     Op = 74
	Astore0     Op = 75
	Astore1     Op = 76
	Astore2     Op = 77
	Astore3     Op = 78
	Iastore     Op = 79
	Lastore     Op = 80
	Fastore     Op = 81
	Dastore     Op = 82
	Aastore     Op = 83
	Bastore     Op = 84
	Castore     Op = 85
	Sastore     Op = 86
	Pop         Op = 87
	Pop2        Op = 88
	Dup         Op = 89
	DupX1       Op = 90
	DupX2       Op = 91
	Dup2        Op = 92
	Dup2X1      Op = 93
	Dup2X2      Op = 94
	Swap        Op = 95
	Iadd        Op = 96
	Ladd        Op = 97
	Fadd        Op = 98
	Dadd        Op = 99
	Isub        Op = 100
	Lsub        Op = 101
	Fsub        Op = 102
	Dsub        Op = 103
	Imul        Op = 104
	Lmul        Op = 105
	Fmul        Op = 106
	Dmul        Op = 107
	Idiv        Op = 108
	Ldiv        Op = 109
	Fdiv        Op = 110
	Ddiv        Op = 111
	Irem        Op = 112
	Lrem        Op = 113
	Frem        Op = 114
	Drem        Op = 115
	Ineg        Op = 116
	Lneg        Op = 117
	Fneg        Op = 118
	Dneg        Op = 119
	Ishl        Op = 120
	Lshl        Op = 121
	Ishr        Op = 122
	Lshr        Op = 123
	Iushr       Op = 124
	Lushr       Op = 125
	Iand        Op = 126
	Land        Op = 127
	Ior         Op = 128
	Lor         Op = 129
	Ixor        Op = 130
	Lxor        Op = 131
	Iinc        Op = 132
	I2l         Op = 133
	I2f         Op = 134
	I2d         Op = 135
	L2i         Op = 136
	L2f         Op = 137
	L2d         Op = 138
	F2i         Op = 139
	F2l         Op = 140
	F2d         Op = 141
	D2i         Op = 142
	D2l         Op = 143
	D2f         Op = 144
	I2b         Op = 145
	I2c         Op = 146
	I2s         Op = 147
	Lcmp        Op = 148
	Fcmpl       Op = 149
	Fcmpg       Op = 150
	Dcmpl       Op = 151
	Dcmpg       Op = 152
	Ifeq        Op = 153
	Ifne        Op = 154
	Iflt        Op = 155
	Ifge        Op = 156
	Ifgt        Op = 157
	Ifle        Op = 158
	IfIcmpeq    Op = 159
	IfIcmpne    Op = 160
	IfIcmplt    Op = 161
	IfIcmpge    Op = 162
	IfIcmpgt    Op = 163
	IfIcmple    Op = 164
	IfAcmpeq    Op = 165
	IfAcmpne    Op = 166
	Goto        Op = 167
	Jsr         Op = 168
	Ret         Op = 169
	Tableswitch Op = 170
	Lookupswitch Op = 171
	Ireturn     Op = 172
	Lreturn     Op = 173
	Freturn     Op = 174
	Dreturn     Op = 175
	Areturn     Op = 176
	Return      Op = 177
	Getstatic   Op = 178
	Putstatic   Op = 179
	Getfield    Op = 180
	Putfield    Op = 181
	Invokevirtual   Op = 182
	Invokespecial   Op = 183
	Invokestatic    Op = 184
	Invokeinterface Op = 185
	Invokedynamic   Op = 186
	New         Op = 187
	Newarray    Op = 188
	Anewarray   Op = 189
	Arraylength Op = 190
	Athrow      Op = 191
	Checkcast   Op = 192
	Instanceof  Op = 193
	Monitorenter Op = 194
	Monitorexit  Op = 195
	Wide         Op = 196
	Multianewarray Op = 197
	Ifnull       Op = 198
	Ifnonnull    Op = 199
	GotoW        Op = 200
	JsrW         Op = 201
)

// Primitive array type codes used by the newarray operand (JVM Table 6.5).
const (
	TBoolean = 4
	TChar    = 5
	TFloat   = 6
	TDouble  = 7
	TByte    = 8
	TShort   = 9
	TInt     = 10
	TLong    = 11
)
