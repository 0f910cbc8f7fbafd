package pdf

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRunner struct {
	outputs map[string]string // command name -> stdout
	stderr  string
	err     error
	calls   [][]string
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	f.calls = append(f.calls, append([]string{name}, args...))
	if f.err != nil {
		return nil, []byte(f.stderr), f.err
	}
	return []byte(f.outputs[name]), []byte(f.stderr), nil
}

func TestExtractRunsPdftotext(t *testing.T) {
	r := &fakeRunner{outputs: map[string]string{
		"pdftotext": "EF01MA01  Contar de maneira exata\r\n\r\n\r\n",
		"pdfinfo":   "Title: BNCC\nPages:          12\n",
	}}
	e := NewExtractorWithRunner(Config{}, r, nil)

	res, err := e.Extract(context.Background(), "/tmp/bncc.pdf")
	require.NoError(t, err)

	assert.Equal(t, "EF01MA01 Contar de maneira exata", res.Text)
	assert.Equal(t, 12, res.Pages)
	require.NotEmpty(t, r.calls)
	assert.Equal(t,
		[]string{"pdftotext", "-layout", "-nopgbrk", "-enc", "UTF-8", "/tmp/bncc.pdf", "-"},
		r.calls[0])
}

func TestExtractMaxPagesAddsLimit(t *testing.T) {
	r := &fakeRunner{outputs: map[string]string{"pdftotext": "x"}}
	e := NewExtractorWithRunner(Config{MaxPages: 50}, r, nil)

	_, err := e.Extract(context.Background(), "/tmp/doc.pdf")
	require.NoError(t, err)

	assert.Contains(t, r.calls[0], "-l")
	assert.Contains(t, r.calls[0], "50")
}

func TestExtractRejectsNonPDF(t *testing.T) {
	e := NewExtractorWithRunner(Config{}, &fakeRunner{}, nil)

	_, err := e.Extract(context.Background(), "/tmp/photo.jpg")
	assert.Error(t, err)
}

func TestExtractCommandFailure(t *testing.T) {
	r := &fakeRunner{err: errors.New("exit status 1"), stderr: "Syntax Error: damaged stream"}
	e := NewExtractorWithRunner(Config{}, r, nil)

	_, err := e.Extract(context.Background(), "/tmp/corrupt.pdf")
	assert.ErrorContains(t, err, "pdftotext")
}

func TestExtractBlankOutputIsNotAnError(t *testing.T) {
	r := &fakeRunner{outputs: map[string]string{"pdftotext": "   \n\n  "}}
	e := NewExtractorWithRunner(Config{}, r, nil)

	res, err := e.Extract(context.Background(), "/tmp/scanned.pdf")
	require.NoError(t, err)
	assert.Empty(t, res.Text, "blank output is a valid result; classification happens downstream")
}

func TestExtractCollectsStderrWarnings(t *testing.T) {
	r := &fakeRunner{
		outputs: map[string]string{"pdftotext": "content"},
		stderr:  "Syntax Warning: Invalid Font Weight",
	}
	e := NewExtractorWithRunner(Config{}, r, nil)

	res, err := e.Extract(context.Background(), "/tmp/doc.pdf")
	require.NoError(t, err)
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "Invalid Font Weight")
}

func TestNormalize(t *testing.T) {
	in := "a\tb\r\nc   d\n\n\n\n____\ne  "
	out := Normalize(in)
	assert.Equal(t, "a b\nc d\n\ne", out)
}
