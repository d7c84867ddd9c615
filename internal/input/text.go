package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"containment/internal/domain"
)

// DefaultMaxEntities bounds the number of motes and of devices accepted from
// a single input.
const DefaultMaxEntities = 1 << 24

type tokenReader struct {
	sc *bufio.Scanner
}

func newTokenReader(r io.Reader) *tokenReader {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	return &tokenReader{sc: sc}
}

// next reads one non-negative integer.
func (t *tokenReader) next(field string, pos int) (int, error) {
	if !t.sc.Scan() {
		err := t.sc.Err()
		if err == nil {
			err = ErrUnexpectedEOF
		}
		return 0, &InputError{Field: field, Position: pos, Err: err}
	}
	tok := t.sc.Text()
	n, err := strconv.Atoi(tok)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) {
			err = numErr.Err
		}
		return 0, &InputError{Field: field, Position: pos, Token: tok, Err: err}
	}
	if n < 0 {
		return 0, &InputError{Field: field, Position: pos, Token: tok, Err: ErrNegative}
	}
	return n, nil
}

// ParseText reads a problem in the text format. A limit of 0 or less selects
// DefaultMaxEntities.
func ParseText(r io.Reader, limit int) (domain.Problem, error) {
	if limit <= 0 {
		limit = DefaultMaxEntities
	}
	t := newTokenReader(r)

	m, err := t.next("mote count", 0)
	if err != nil {
		return domain.Problem{}, err
	}
	d, err := t.next("device count", 0)
	if err != nil {
		return domain.Problem{}, err
	}
	if err := checkLimits(m, d, limit); err != nil {
		return domain.Problem{}, err
	}

	p := domain.Problem{
		Motes:   make([]domain.Mote, m),
		Devices: make([]domain.Device, d),
	}
	for i := range p.Motes {
		if p.Motes[i].Radius, err = t.next("mote radius", i+1); err != nil {
			return domain.Problem{}, err
		}
	}
	for i := range p.Devices {
		dev := &p.Devices[i]
		if dev.Length, err = t.next("device length", i+1); err != nil {
			return domain.Problem{}, err
		}
		if dev.Width, err = t.next("device width", i+1); err != nil {
			return domain.Problem{}, err
		}
		if dev.Height, err = t.next("device height", i+1); err != nil {
			return domain.Problem{}, err
		}
	}
	return p, nil
}

// WriteText encodes p in the text format.
func WriteText(w io.Writer, p domain.Problem) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d %d\n", len(p.Motes), len(p.Devices))
	for _, m := range p.Motes {
		fmt.Fprintf(bw, "%d\n", m.Radius)
	}
	for _, d := range p.Devices {
		fmt.Fprintf(bw, "%d %d %d\n", d.Length, d.Width, d.Height)
	}
	return bw.Flush()
}

func checkLimits(motes, devices, limit int) error {
	if motes > limit {
		return &AllocationError{What: "motes", Count: motes, Limit: limit}
	}
	if devices > limit {
		return &AllocationError{What: "devices", Count: devices, Limit: limit}
	}
	return nil
}
