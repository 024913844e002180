package constants

// Canonical MIME types handled by the pipeline.
const (
	MIMEJPEG = "image/jpeg"
	MIMEPNG  = "image/png"
	MIMEWebP = "image/webp"
	MIMEHEIC = "image/heic"
	MIMEHEIF = "image/heif"
)

// PassthroughMIMETypes are accepted as-is by the extraction service and the
// spreadsheet embedder.
var PassthroughMIMETypes = map[string]struct{}{
	MIMEJPEG: {},
	MIMEPNG:  {},
	MIMEWebP: {},
}

// ConvertibleMIMETypes maps legacy camera encodings to the encoding the
// normalizer transcodes them into.
var ConvertibleMIMETypes = map[string]string{
	MIMEHEIC: MIMEJPEG,
	MIMEHEIF: MIMEJPEG,
}

// AllowedUpload reports whether contentType may enter the pipeline at all.
func AllowedUpload(contentType string) bool {
	if _, ok := PassthroughMIMETypes[contentType]; ok {
		return true
	}
	_, ok := ConvertibleMIMETypes[contentType]
	return ok
}

// Passthrough reports whether contentType needs no transcoding.
func Passthrough(contentType string) bool {
	_, ok := PassthroughMIMETypes[contentType]
	return ok
}

// ExtensionForMIME derives the storage-key extension from a normalized
// content type. Unknown types get a generic marker rather than an error;
// the allow-list upstream keeps them out of the storage path anyway.
func ExtensionForMIME(contentType string) string {
	switch contentType {
	case MIMEJPEG:
		return "jpg"
	case MIMEPNG:
		return "png"
	case MIMEWebP:
		return "webp"
	default:
		return "img"
	}
}
