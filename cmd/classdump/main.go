package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/go-interpreter/classlift/classfile"
	"github.com/go-interpreter/classlift/lift"
	"github.com/go-interpreter/classlift/lift/expr"
	"github.com/go-interpreter/classlift/mnemonic"
)

func init() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: classdump [options] file1.class [file2.class [...]]

ex:
 $> classdump -x ./Hello.class

options:
`,
		)
		flag.PrintDefaults()
		os.Exit(1)
	}
}

var (
	flagVerbose = flag.Bool("v", false, "enable/disable verbose mode")
	flagBlocks  = flag.Bool("b", false, "print each method's basic blocks")
	flagExpr    = flag.Bool("x", false, "lift and print each method's expressions")
)

func main() {
	log.SetPrefix("classdump: ")
	log.SetFlags(0)

	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
	}

	classfile.SetDebugMode(*flagVerbose)

	for i, fname := range flag.Args() {
		if i > 0 {
			fmt.Println()
		}
		process(fname)
	}
}

func process(fname string) {
	cf, closer, err := classfile.LoadFile(fname)
	if err != nil {
		log.Fatalf("could not load %q: %v", fname, err)
	}
	defer closer.Close()

	name, _ := cf.ClassName()
	super, hasSuper := cf.SuperClassName()
	fmt.Printf("%s: class %s", fname, name)
	if hasSuper {
		fmt.Printf(" extends %s", super)
	}
	fmt.Printf(" (major=%d minor=%d, flags=%#04x)\n", cf.MajorVersion, cf.MinorVersion, uint16(cf.AccessFlags))

	for i := range cf.Methods {
		m := &cf.Methods[i]
		mname, _ := cf.ConstantPool.Utf8(m.NameIndex)
		mdesc, _ := cf.ConstantPool.Utf8(m.DescriptorIndex)
		fmt.Printf("\nmethod[%d]: %s%s (flags=%#04x)\n", i, mname, mdesc, uint16(m.AccessFlags))

		code, hasCode, err := lift.LiftMethod(cf, m)
		if err != nil {
			fmt.Printf("  <lift error: %v>\n", err)
			continue
		}
		if !hasCode {
			fmt.Printf("  <no code>\n")
			continue
		}

		if *flagBlocks {
			printBlocks(code)
		}
		if *flagExpr {
			printExpr(code, cf.ConstantPool)
		}
	}
}

func printBlocks(code *lift.Code) {
	for bi, b := range code.Blocks {
		fmt.Printf("  block[%d]: [%d, %d)\n", bi, b.Start, b.End)
		for ii := b.Start; ii < b.End; ii++ {
			in := code.Instructions[ii]
			fmt.Printf("    %06x: %s\n", code.ByteOffsets[ii], mnemonic.Name(in.Opcode()))
		}
		fmt.Printf("    preds=%v exit=%s\n", b.Preds, exitString(b.Exit))
	}
}

func exitString(e lift.Exit) string {
	switch e.Kind {
	case lift.ExitFallthrough:
		return "fallthrough"
	case lift.ExitJump:
		return fmt.Sprintf("jump%v", e.Targets)
	case lift.ExitBranch:
		return fmt.Sprintf("branch%v", e.Targets)
	case lift.ExitReturn:
		return "return"
	case lift.ExitThrow:
		return "throw"
	default:
		return "?"
	}
}

func printExpr(code *lift.Code, pool *classfile.ConstantPool) {
	blocks, err := expr.Lift(code, pool)
	if err != nil {
		fmt.Printf("  <expr lift error: %v>\n", err)
		return
	}
	for _, be := range blocks {
		fmt.Printf("  block[%d]:\n", be.Block)
		for _, s := range be.Statements {
			fmt.Printf("    %#v\n", s)
		}
	}
}
