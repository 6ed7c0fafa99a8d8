// Package jsoncol builds strongly typed, columnar arrays from schemaless
// JSON and writes them back as JSON text.
//
// Ingestion discovers structure on the fly: each position of the input is
// accumulated by a node builder that specializes on its first value and is
// promoted (to an option on the first null, to a union on the first
// incompatible shape) rather than rejecting input. Snapshots are immutable
// array.Array values.
//
// Design policy:
//   - Keep only public APIs in the root package; put tokenizer contracts and
//     buffers under internal/.
//   - Tokenizer drivers live under source/, the array model under array/,
//     the CLI under cmd/jsoncol, HTTP adapters under middleware/.
//   - Non-finite floats and missing values travel through JSON as configured
//     sentinel strings (SentinelConfig).
//
// Typical usage:
//
//	arr, err := jsoncol.FromText(`{"x": 1.1} {"x": 2.2}`)
//	text, err := jsoncol.ToText(arr, jsoncol.SentinelConfig{NaNString: jsoncol.Ptr("NaN")})
//	values := jsoncol.ToNative(arr)
//
// Incremental use:
//
//	b := jsoncol.NewBuilder()
//	for {
//		if err := b.Append(src); err == io.EOF {
//			break
//		} else if err != nil {
//			return err
//		}
//	}
//	arr, err := b.Snapshot()
package jsoncol
