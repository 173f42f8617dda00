// Package compress provides optional compression codecs for entry binary attachments.
//
// KeePass 1.x entries may carry an opaque binary attachment alongside a short
// description string. The on-disk TLV codec for that field treats the bytes as
// identity (see the record package) — whatever is stored there round-trips
// unchanged. This package lets a caller shrink large attachments (screenshots,
// key files, documents) before they are handed to the entry, without touching
// the wire format at all.
//
// # Architecture
//
// Three small interfaces describe a codec:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// # Supported algorithms
//
//   - None: passthrough, useful when the attachment is already compressed
//   - Zstd: best ratio, moderate speed — good default for archival exports
//   - S2: balanced ratio/speed
//   - LZ4: fastest decompression
//
// Callers select an algorithm with CreateCodec or GetCodec and apply it
// themselves, or let model.Entry.SetCompressedBinary (exposed on the database
// as the WithEntryCompressedBinary entry option) run the codec and record the
// scheme in the entry's binary description. Nothing is compressed unless the
// caller asks for it; the record codec stores attachment bytes unchanged.
package compress
