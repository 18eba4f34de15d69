package console

import (
	"fmt"
	"strconv"
	"strings"
)

// promptString asks until a non-empty line is entered. The second return
// is false once input is exhausted.
func (c *Console) promptString(prompt string) (string, bool) {
	for {
		fmt.Fprint(c.out, prompt)
		line, err := c.in.ReadString('\n')
		val := strings.TrimSpace(line)
		if val != "" {
			return val, true
		}
		if err != nil {
			return "", false
		}
		fmt.Fprintln(c.out, "Empty input, try again")
	}
}

// promptInt asks until a valid integer is entered.
func (c *Console) promptInt(prompt string) (int, bool) {
	for {
		val, ok := c.promptString(prompt)
		if !ok {
			return 0, false
		}
		n, err := strconv.Atoi(val)
		if err != nil {
			fmt.Fprintln(c.out, "Enter a valid number")
			continue
		}
		return n, true
	}
}
