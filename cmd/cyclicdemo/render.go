package main

import (
	"io"
	"strconv"

	"github.com/ericlevine/gf2cyclic"
	"github.com/olekukonko/tablewriter"
	"golang.org/x/text/message"
)

func writeRun(w io.Writer, p *message.Printer, r *gf2cyclic.RunResult, showTable bool) error {
	p.Fprintf(w, msgExperiment, r.Index)
	p.Fprintf(w, msgParameters, r.N, r.P, r.Code.MessageLength(), r.Code.String())
	p.Fprintf(w, msgMessage, r.Message.String())
	p.Fprintf(w, msgMessagePoly, r.Encoding.Message.String())
	p.Fprintf(w, msgGenerator, r.Code.Generator().String())
	p.Fprintf(w, msgCodeword, r.Encoding.Codeword.String())
	p.Fprintf(w, msgCodewordBits, r.Encoding.Bits.String())
	p.Fprintf(w, msgCorrupted, r.Corrupted.String())

	c := r.Correction
	switch {
	case r.Uncorrectable:
		p.Fprintf(w, msgUncorrectable, c.Syndrome.Bits(r.Table.Width()))
	case c.NoError:
		p.Fprintf(w, msgNoError)
	default:
		p.Fprintf(w, msgDetected, c.Index)
		p.Fprintf(w, msgCorrected, c.Corrected.String())
	}

	if showTable {
		p.Fprintf(w, msgTableTitle, r.Table.Len(), len(r.Table.Collisions()))
		writeTable(w, p, r)
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func writeTable(w io.Writer, p *message.Printer, r *gf2cyclic.RunResult) {
	width := r.Table.Width()
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{p.Sprintf(msgPosition), p.Sprintf(msgSyndrome), p.Sprintf(msgRemainder)})
	for _, e := range r.Table.Entries() {
		table.Append([]string{
			strconv.Itoa(e.Position),
			e.Syndrome.Bits(width),
			e.Syndrome.Poly(width).String(),
		})
	}
	table.Render()
}
