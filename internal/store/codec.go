package store

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"containment/internal/domain"
)

var (
	reportEncMode cbor.EncMode
	reportDecMode cbor.DecMode
)

func init() {
	var err error

	encOpts := cbor.EncOptions{
		Sort:          cbor.SortCanonical,
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
		Time:          cbor.TimeRFC3339Nano,
	}
	reportEncMode, err = encOpts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create report CBOR encoder mode: %v", err))
	}

	decOpts := cbor.DecOptions{
		DupMapKey:   cbor.DupMapKeyQuiet,
		IndefLength: cbor.IndefLengthAllowed,
	}
	reportDecMode, err = decOpts.DecMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create report CBOR decoder mode: %v", err))
	}
}

// EncodeReport encodes r to CBOR.
func EncodeReport(r domain.Report) ([]byte, error) {
	return reportEncMode.Marshal(r)
}

// DecodeReport decodes a CBOR report blob.
func DecodeReport(b []byte) (domain.Report, error) {
	var r domain.Report
	if err := reportDecMode.Unmarshal(b, &r); err != nil {
		return domain.Report{}, err
	}
	return r, nil
}
