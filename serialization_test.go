package bigint

import (
	"testing"

	"github.com/globalsign/mgo/bson"
	json "github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

var serializationCorpus = []string{
	"0",
	"42",
	"-42",
	"9223372036854775807",
	"-9223372036854775808",
	"121932631356500531347203169112635269",
	"-121932631356500531347203169112635269",
}

// unexported fields need an explicit comparer for cmp.
var bigIntComparer = cmp.Comparer(func(a, b *BigInt) bool {
	return a.Cmp(b) == 0
})

func TestBigInt_BSON(t *testing.T) {
	type doc struct {
		Value *BigInt
	}
	for _, s := range serializationCorpus {
		t.Run(s, func(t *testing.T) {
			x, err := NewFromString(s, 10)
			require.NoError(t, err)

			data, err := bson.Marshal(doc{Value: x})
			require.NoError(t, err)

			var back doc
			require.NoError(t, bson.Unmarshal(data, &back))
			back.Value.check(t)
			require.Empty(t, cmp.Diff(x, back.Value, bigIntComparer))
		})
	}
}

func TestBigInt_JSON(t *testing.T) {
	type doc struct {
		Value *BigInt
	}
	for _, s := range serializationCorpus {
		t.Run(s, func(t *testing.T) {
			x, err := NewFromString(s, 10)
			require.NoError(t, err)

			data, err := json.Marshal(doc{Value: x})
			require.NoError(t, err)
			require.Equal(t, `{"Value":"`+s+`"}`, string(data))

			var back doc
			require.NoError(t, json.Unmarshal(data, &back))
			back.Value.check(t)
			require.Empty(t, cmp.Diff(x, back.Value, bigIntComparer))
		})
	}
}

func TestBigInt_JSONBareNumber(t *testing.T) {
	z := new(BigInt)
	require.NoError(t, z.UnmarshalJSON([]byte("-12345")))
	require.Zero(t, z.CmpInt64(-12345))
}

func TestBigInt_Msgpack(t *testing.T) {
	for _, s := range serializationCorpus {
		t.Run(s, func(t *testing.T) {
			x, err := NewFromString(s, 10)
			require.NoError(t, err)

			data, err := msgpack.Marshal(x)
			require.NoError(t, err)

			back := new(BigInt)
			require.NoError(t, msgpack.Unmarshal(data, back))
			back.check(t)
			require.Empty(t, cmp.Diff(x, back, bigIntComparer))
		})
	}
}

func TestBigInt_Text(t *testing.T) {
	for _, s := range serializationCorpus {
		t.Run(s, func(t *testing.T) {
			x, err := NewFromString(s, 10)
			require.NoError(t, err)

			data, err := x.MarshalText()
			require.NoError(t, err)
			require.Equal(t, s, string(data))

			back := new(BigInt)
			require.NoError(t, back.UnmarshalText(data))
			require.Zero(t, back.Cmp(x))
		})
	}

	z := new(BigInt)
	require.Error(t, z.UnmarshalText([]byte("12x3")))
}
