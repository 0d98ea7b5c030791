// Package certificate renders the downloadable quiz-pass artifacts.
//
// Two formats are offered: a plain-text certificate (the lightweight inline
// download) and a PDF rendered with gofpdf. Neither is persisted server-side;
// the bytes exist only for the single download response.
package certificate

import (
	"bytes"
	"fmt"

	"github.com/phpdave11/gofpdf"
)

// Text returns the plain-text certificate body for a passing attempt.
func Text(username string, percentage float64) []byte {
	var b bytes.Buffer
	fmt.Fprintf(&b, "Congratulations! You have passed the quiz with a %.0f%% score!\n\n", percentage)
	b.WriteString("You are now eligible for a certificate!\n\n")
	b.WriteString("--- Certificate ---\n")
	fmt.Fprintf(&b, "Your Name: %s\n", username)
	b.WriteString("Date:\nSignature:\n")
	return b.Bytes()
}

// PDF renders the certificate as a single-page A4 PDF document.
func PDF(username string, percentage float64) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 24)
	pdf.CellFormat(0, 20, "Certificate of Achievement", "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 16)
	pdf.CellFormat(0, 10, fmt.Sprintf("This certifies that %s", username), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 10, fmt.Sprintf("has completed the Trivia Quiz with a score of %.0f%%.", percentage), "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
