package consoles

import (
	"bufio"
	"errors"
	"io"
	"os"
)

type Stdin io.Reader

func (Module) Stdin() Stdin {
	return os.Stdin
}

type Stdout io.Writer

func (Module) Stdout() Stdout {
	return os.Stdout
}

const Prompt = "Press Enter to continue . . . "

// Hold blocks until the user presses Enter. A closed input counts as an
// acknowledgment, there is nobody left to wait for.
type Hold func() error

func (Module) Hold(
	stdin Stdin,
	stdout Stdout,
) Hold {
	return func() error {
		if _, err := io.WriteString(stdout, "\n"+Prompt); err != nil {
			return err
		}
		_, err := bufio.NewReader(stdin).ReadString('\n')
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
}
