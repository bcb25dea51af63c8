package dataobj_test

import (
	"testing"

	"github.com/usnistgov/pivcheck/core/testenv"
	"github.com/usnistgov/pivcheck/piv/boundary"
	"github.com/usnistgov/pivcheck/piv/container"
	"github.com/usnistgov/pivcheck/piv/dataobj"
	"github.com/usnistgov/pivcheck/piv/tlv"
	"go.uber.org/multierr"
)

var (
	makeAR       = testenv.MakeAR
	bytesFromHex = testenv.BytesFromHex
	repeatByte   = testenv.RepeatByte
)

func makeCHUID(fascnLen, guidLen, sigLen int, extra ...[]byte) []byte {
	fields := [][]byte{
		tlv.MustEncode(boundary.TagFASCN, repeatByte(0xD4, fascnLen)),
		tlv.MustEncode(boundary.TagGUID, repeatByte(0x01, guidLen)),
		tlv.MustEncode(boundary.TagExpirationDate, []byte("20301231")),
		tlv.MustEncode(boundary.TagIssuerAsymmetricSignature, repeatByte(0x30, sigLen)),
	}
	fields = append(fields, extra...)
	fields = append(fields, tlv.MustEncode(boundary.TagErrorDetectionCode))
	return tlv.MustEncode(dataobj.TagDataObject, fields...)
}

func TestCHUID(t *testing.T) {
	assert, require := makeAR(t)

	data := makeCHUID(25, 16, 1500)
	r, e := dataobj.Check(nil, "CHUID", data)
	require.NoError(e)
	assert.Equal(container.CardHolderUniqueIdentifier, r.Container)
	assert.Equal(len(data), r.Size)
	assert.True(r.Pass())
	assert.NoError(r.Err())
	assert.Empty(r.SoftOverrides())

	require.Len(r.Verdicts, 5)
	assert.Equal(boundary.TagFASCN, r.Verdicts[0].Tag)
	assert.Equal(25, r.Verdicts[0].Length)
	assert.Equal(boundary.TagErrorDetectionCode, r.Verdicts[4].Tag)
	assert.Equal(0, r.Verdicts[4].Length)
	assert.Len(r.Absent, 4)
}

func TestCHUIDFailures(t *testing.T) {
	assert, require := makeAR(t)

	r, e := dataobj.Check(nil, container.CardHolderUniqueIdentifier, makeCHUID(24, 15, 10))
	require.NoError(e)
	assert.False(r.Pass())
	require.Len(r.Failures(), 2)

	errs := multierr.Errors(r.Err())
	require.Len(errs, 2)
	for i, tag := range []tlv.Tag{boundary.TagFASCN, boundary.TagGUID} {
		var ve *boundary.ValidationError
		if assert.ErrorAs(errs[i], &ve) {
			assert.Equal(tag, ve.Tag)
			assert.False(ve.Outcome.HasDelta())
		}
		assert.ErrorIs(errs[i], boundary.ErrLength)
	}
}

func TestCHUIDSoftOverride(t *testing.T) {
	assert, require := makeAR(t)

	r, e := dataobj.Check(nil, "CHUID", makeCHUID(25, 16, 3000))
	require.NoError(e)
	assert.True(r.Pass())
	soft := r.SoftOverrides()
	require.Len(soft, 1)
	assert.Equal(boundary.TagIssuerAsymmetricSignature, soft[0].Tag)
	assert.Equal(952, soft[0].Outcome.Delta)
}

func TestDiscovery(t *testing.T) {
	assert, require := makeAR(t)

	r, e := dataobj.Check(nil, "Discovery", bytesFromHex("7E 12 4F 0B A000000308000010000100 5F2F 02 4010"))
	require.NoError(e)
	assert.True(r.Pass())
	require.Len(r.Verdicts, 2)
	assert.Equal(boundary.TagApplicationAID, r.Verdicts[0].Tag)
	assert.Equal(11, r.Verdicts[0].Length)
	assert.Equal(boundary.TagPINUsagePolicy, r.Verdicts[1].Tag)
	assert.Empty(r.Absent)

	r, e = dataobj.Check(nil, "Discovery", bytesFromHex("7E 11 4F 0A A0000003080000100001 5F2F 02 4010"))
	require.NoError(e)
	assert.False(r.Pass())
	assert.Error(r.Err())
}

func TestBITGroup(t *testing.T) {
	assert, require := makeAR(t)

	data := tlv.MustEncode(tlv.MakeTag(0x7F, 0x61),
		tlv.MustEncode(boundary.TagNumberOfFingers, []byte{0x02}),
		tlv.MustEncode(boundary.TagBIT, repeatByte(0xA1, 20)),
		tlv.MustEncode(boundary.TagBIT, repeatByte(0xA1, 30)),
	)
	r, e := dataobj.Check(nil, "BITGT", data)
	require.NoError(e)
	require.Len(r.Verdicts, 3)
	assert.True(r.Verdicts[1].Pass())
	assert.False(r.Verdicts[2].Pass())
	assert.Equal(2, r.Verdicts[2].Outcome.Delta)
	assert.Len(multierr.Errors(r.Err()), 1)
}

func TestSchemaError(t *testing.T) {
	assert, _ := makeAR(t)

	_, e := dataobj.Check(nil, "CHUID", makeCHUID(25, 16, 10, tlv.MustEncode(boundary.TagPairingCode, repeatByte(0x31, 8))))
	var se *boundary.SchemaError
	if assert.ErrorAs(e, &se) {
		assert.Equal(boundary.TagPairingCode, se.Tag)
	}
	assert.ErrorIs(e, boundary.ErrNoRule)

	_, e = dataobj.Check(nil, "NoSuchContainer", makeCHUID(25, 16, 10))
	assert.ErrorIs(e, boundary.ErrNoRuleset)
}

func TestDecodeError(t *testing.T) {
	assert, _ := makeAR(t)

	data := makeCHUID(25, 16, 10)
	_, e := dataobj.Check(nil, "CHUID", data[:len(data)-3])
	var de *tlv.DecodeError
	if assert.ErrorAs(e, &de) {
		assert.Equal(0, de.Offset)
	}
	assert.ErrorIs(e, tlv.ErrIncomplete)

	data[len(data)-1] = 0x01 // FE claims one octet beyond the wrapper
	_, e = dataobj.Check(nil, "CHUID", data)
	assert.ErrorIs(e, tlv.ErrIncomplete)
}
