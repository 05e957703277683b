package ofx

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/aclindsa/ofxgo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenledger/greenledger/internal/model"
)

// Sample OFX data for testing.
const sampleBankOFX = `OFXHEADER:100
DATA:OFXSGML
VERSION:102
SECURITY:NONE
ENCODING:USASCII
CHARSET:1252
COMPRESSION:NONE
OLDFILEUID:NONE
NEWFILEUID:NONE

<OFX>
<SIGNONMSGSRSV1>
<SONRS>
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<DTSERVER>20240315120000[0:GMT]
<LANGUAGE>ENG
</SONRS>
</SIGNONMSGSRSV1>
<BANKMSGSRSV1>
<STMTTRNRS>
<TRNUID>1
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<STMTRS>
<CURDEF>USD
<BANKACCTFROM>
<BANKID>123456789
<ACCTID>1234567890
<ACCTTYPE>CHECKING
</BANKACCTFROM>
<BANKTRANLIST>
<DTSTART>20240101120000[0:GMT]
<DTEND>20240131120000[0:GMT]
<STMTTRN>
<TRNTYPE>DEBIT
<DTPOSTED>20240115120000[0:GMT]
<TRNAMT>-25.50
<FITID>2024011501
<NAME>STARBUCKS STORE #1234
</STMTTRN>
<STMTTRN>
<TRNTYPE>DIRECTDEP
<DTPOSTED>20240120120000[0:GMT]
<TRNAMT>3200.00
<FITID>2024012001
<NAME>ACME PAYROLL
</STMTTRN>
<STMTTRN>
<TRNTYPE>INT
<DTPOSTED>20240125120000[0:GMT]
<TRNAMT>1.25
<FITID>2024012501
<NAME>INTEREST PAYMENT
</STMTTRN>
</BANKTRANLIST>
<LEDGERBAL>
<BALAMT>1000.00
<DTASOF>20240131120000[0:GMT]
</LEDGERBAL>
</STMTRS>
</STMTTRNRS>
</BANKMSGSRSV1>
</OFX>`

const sampleCreditCardOFX = `OFXHEADER:100
DATA:OFXSGML
VERSION:102
SECURITY:NONE
ENCODING:USASCII
CHARSET:1252
COMPRESSION:NONE
OLDFILEUID:NONE
NEWFILEUID:NONE

<OFX>
<SIGNONMSGSRSV1>
<SONRS>
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<DTSERVER>20240315120000[0:GMT]
<LANGUAGE>ENG
</SONRS>
</SIGNONMSGSRSV1>
<CREDITCARDMSGSRSV1>
<CCSTMTTRNRS>
<TRNUID>1
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<CCSTMTRS>
<CURDEF>USD
<CCACCTFROM>
<ACCTID>4111111111111111
</CCACCTFROM>
<BANKTRANLIST>
<DTSTART>20240101120000[0:GMT]
<DTEND>20240131120000[0:GMT]
<STMTTRN>
<TRNTYPE>DEBIT
<DTPOSTED>20240110120000[0:GMT]
<TRNAMT>-45.99
<FITID>CC2024011001
<NAME>AMAZON.COM*RT4Y7HG2
</STMTTRN>
<STMTTRN>
<TRNTYPE>DEBIT
<DTPOSTED>20240115120000[0:GMT]
<TRNAMT>-15.00
<FITID>CC2024011501
<NAME>NETFLIX.COM
</STMTTRN>
</BANKTRANLIST>
<LEDGERBAL>
<BALAMT>-500.00
<DTASOF>20240131120000[0:GMT]
</LEDGERBAL>
</CCSTMTRS>
</CCSTMTTRNRS>
</CREDITCARDMSGSRSV1>
</OFX>`

func TestParseFile(t *testing.T) {
	tests := []struct {
		name          string
		ofxData       string
		expectedCount int
		expectedError bool
	}{
		{
			name:          "valid bank statement",
			ofxData:       sampleBankOFX,
			expectedCount: 3,
			expectedError: false,
		},
		{
			name:          "valid credit card statement",
			ofxData:       sampleCreditCardOFX,
			expectedCount: 2,
			expectedError: false,
		},
		{
			name:          "invalid OFX data",
			ofxData:       "not valid OFX",
			expectedCount: 0,
			expectedError: true,
		},
		{
			name:          "empty OFX",
			ofxData:       "",
			expectedCount: 0,
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parser := NewParser()
			reader := strings.NewReader(tt.ofxData)

			entries, err := parser.ParseFile(context.Background(), reader)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Len(t, entries, tt.expectedCount)
			}
		})
	}
}

func TestParseBankEntries(t *testing.T) {
	parser := NewParser()
	reader := strings.NewReader(sampleBankOFX)

	entries, err := parser.ParseFile(context.Background(), reader)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	// Debit becomes an expense with a positive amount.
	e1 := entries[0]
	assert.Equal(t, "2024011501", e1.SourceID)
	assert.Equal(t, model.TypeExpense, e1.Type)
	assert.True(t, e1.Amount.Equal(decimal.NewFromFloat(25.50)))
	assert.Equal(t, "STARBUCKS STORE #1234", e1.Description)
	assert.Equal(t, 2024, e1.Date.Year())
	assert.Equal(t, time.January, e1.Date.Month())
	assert.Equal(t, 15, e1.Date.Day())
	assert.Empty(t, e1.CategoryHint)

	// Direct deposit becomes income with a salary hint.
	e2 := entries[1]
	assert.Equal(t, model.TypeIncome, e2.Type)
	assert.True(t, e2.Amount.Equal(decimal.NewFromInt(3200)))
	assert.Equal(t, "salary", e2.CategoryHint)

	// Interest becomes income with an investment hint.
	e3 := entries[2]
	assert.Equal(t, model.TypeIncome, e3.Type)
	assert.True(t, e3.Amount.Equal(decimal.NewFromFloat(1.25)))
	assert.Equal(t, "investment", e3.CategoryHint)
}

func TestParseCreditCardEntries(t *testing.T) {
	parser := NewParser()
	reader := strings.NewReader(sampleCreditCardOFX)

	entries, err := parser.ParseFile(context.Background(), reader)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	e1 := entries[0]
	assert.Equal(t, "CC2024011001", e1.SourceID)
	assert.Equal(t, "AMAZON.COM*RT4Y7HG2", e1.Description)
	assert.Equal(t, model.TypeExpense, e1.Type)
	assert.True(t, e1.Amount.Equal(decimal.NewFromFloat(45.99)))

	e2 := entries[1]
	assert.Equal(t, "CC2024011501", e2.SourceID)
	assert.Equal(t, "NETFLIX.COM", e2.Description)
	assert.True(t, e2.Amount.Equal(decimal.NewFromInt(15)))
}

func TestExtractDescription(t *testing.T) {
	parser := NewParser()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "remove POS prefix",
			input:    "POS PURCHASE STARBUCKS",
			expected: "STARBUCKS",
		},
		{
			name:     "remove DEBIT CARD prefix",
			input:    "DEBIT CARD PURCHASE WHOLE FOODS",
			expected: "WHOLE FOODS",
		},
		{
			name:     "keep clean name",
			input:    "NETFLIX.COM",
			expected: "NETFLIX.COM",
		},
		{
			name:     "trim whitespace",
			input:    "  AMAZON.COM  ",
			expected: "AMAZON.COM",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := ofxgo.Transaction{
				Name: ofxgo.String(tt.input),
			}
			result := parser.extractDescription(tx)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestCategoryHint(t *testing.T) {
	assert.Equal(t, "investment", categoryHint("INT"))
	assert.Equal(t, "investment", categoryHint("DIV"))
	assert.Equal(t, "salary", categoryHint("DIRECTDEP"))
	assert.Equal(t, "utilities", categoryHint("FEE"))
	assert.Equal(t, "", categoryHint("DEBIT"))
}
