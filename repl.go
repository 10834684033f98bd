package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/culebra-lang/culebra/pkg/eval"
	"github.com/culebra-lang/culebra/pkg/lexer"
	"github.com/culebra-lang/culebra/pkg/parser"
	"github.com/culebra-lang/culebra/pkg/report"
)

const banner = `
      /^\/^\
    _|__|  O|
\/     /~   \_/ \
 \____|__________/  \
        \_______      \
                ` + "`" + `\     \                 \
                  |     |                  \
                 /      /                    \
                /     /                       \\
              /      /                         \ \
             /     /                            \  \
           /     /             _----_            \   \
          /     /           _-~      ~-_         |   |
         (      (        _-~    _--_    ~-_     _/   |
          \      ~-____-~    _-~    ~-_    ~-_-~    /
            ~-_           _-~          ~-_       _-~
               ~--______-~                ~-___-~
`

// runREPL drives the interactive loop for the given mode. Interpreter
// mode keeps one evaluator alive for the whole session, so bindings
// persist across submissions.
func runREPL(mode string) error {
	printWelcome(mode)

	scanner := bufio.NewScanner(os.Stdin)
	evaluator := eval.New()

	for {
		text, quit := multilineInput(scanner)
		if quit {
			fmt.Println("Goodbye!")

			return nil
		}
		if strings.TrimSpace(text) == "" {
			continue
		}

		switch mode {
		case "lexer":
			processLexerInput(text)
		case "parser":
			processParserInput(text)
		default:
			processInterpreterInput(text, evaluator)
		}
	}
}

func printWelcome(mode string) {
	fmt.Print(banner)
	fmt.Printf("Welcome to the Culebra %s REPL!\n", capitalize(mode))
	fmt.Println("Type 'exit' on a new line or press Ctrl+D to quit")
	fmt.Println("Enter your code (press Enter twice to execute):")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}

	return strings.ToUpper(s[:1]) + s[1:]
}

// multilineInput collects input until an empty line, auto-indenting after
// block headers: when a line ends with ':', the next line is prefilled
// one tab deeper. Returns quit=true on "exit" or EOF.
func multilineInput(scanner *bufio.Scanner) (string, bool) {
	var lines []string
	indent := ""
	prompt := ">>> "

	for {
		fmt.Print(prompt + indent)
		if !scanner.Scan() {
			fmt.Println()

			return "", true
		}

		line := scanner.Text()
		if strings.TrimSpace(line) == "exit" {
			return "", true
		}
		if line == "" {
			break
		}

		lines = append(lines, indent+line)
		if strings.HasSuffix(strings.TrimRight(line, " "), ":") {
			indent += "\t"
		}
		prompt = "... "
	}

	return strings.Join(lines, "\n"), false
}

// processLexerInput tokenizes one submission and prints the tokens,
// excluding EOF.
func processLexerInput(text string) {
	l := lexer.New(text)
	tokens, err := l.Tokenize()
	if err != nil {
		fmt.Printf("Error: %v\n", err)

		return
	}

	for _, tok := range tokens {
		if tok.Type != lexer.TOKEN_EOF {
			fmt.Println(tok)
		}
	}
}

// processParserInput parses one submission and prints the AST tree, or a
// positioned parse error.
func processParserInput(text string) {
	l := lexer.New(text)
	tokens, err := l.Tokenize()
	if err != nil {
		fmt.Printf("Error: %v\n", err)

		return
	}

	p := parser.New(tokens)
	program := p.Parse()
	if p.HasError() {
		fmt.Println("Parser Errors:")
		fmt.Println(report.New(l.Source()).Report(p.Err().Token, p.Err().Message))

		return
	}

	fmt.Println(program.Pretty())
}

// processInterpreterInput evaluates one submission against the session
// evaluator.
func processInterpreterInput(text string, evaluator *eval.Evaluator) {
	l := lexer.New(text)
	tokens, err := l.Tokenize()
	if err != nil {
		fmt.Printf("Error: %v\n", err)

		return
	}

	p := parser.New(tokens)
	program := p.Parse()
	if p.HasError() {
		fmt.Println("Parser Errors:")
		fmt.Println(report.New(l.Source()).Report(p.Err().Token, p.Err().Message))

		return
	}

	if err := evaluator.Evaluate(program); err != nil {
		fmt.Println(report.New(l.Source()).Report(evaluator.LastNode().Token(), err.Error()))
	}
}
