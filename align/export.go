package align

import "strings"

// Format renders the whole block back to FASTA text, one record per row,
// gaps included. An empty block formats to an empty string.
func Format(b *Block) string {
	var sb strings.Builder
	for _, r := range b.Rows {
		sb.WriteByte('>')
		sb.WriteString(r.Label)
		sb.WriteByte('\n')
		sb.WriteString(r.Seq)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// FormatRaw renders one row as a FASTA record with gaps removed.
func FormatRaw(r Row) string {
	var sb strings.Builder
	sb.WriteByte('>')
	sb.WriteString(r.Label)
	sb.WriteByte('\n')
	sb.WriteString(r.Raw())
	sb.WriteByte('\n')
	return sb.String()
}
