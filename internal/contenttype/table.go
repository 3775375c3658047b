package contenttype

// Compression is the packager's choice of ZIP compression method for a
// payload file, looked up by extension (spec.md §4.9).
type Compression int

const (
	// Normal means DEFLATE.
	Normal Compression = iota
	// None means Store.
	None
)

// Entry is a single extension's classification.
type Entry struct {
	MIMEType    string
	Compression Compression
}

// DefaultEntry is used for any extension not present in the table
// (spec.md §4.9, "Classification miss").
var DefaultEntry = Entry{MIMEType: "application/octet-stream", Compression: Normal}

// ManifestEntry is the fixed classification for AppxManifest.xml,
// regardless of its extension (spec.md §4.9).
var ManifestEntry = Entry{MIMEType: "application/vnd.ms-appx.manifest+xml", Compression: Normal}

// Lookup returns the classification for a lowercased file extension
// (without the leading dot), falling back to DefaultEntry.
func Lookup(extension string) Entry {
	if e, ok := extensionTable[extension]; ok {
		return e
	}
	return DefaultEntry
}

// extensionTable is transcribed from
// original_source/src/prototype/inc/ContentTypeWriter.hpp's
// s_extToContentType.
var extensionTable = map[string]Entry{
	"atom":  {"application/atom+xml", Normal},
	"appx":  {"application/vnd.ms-appx", None},
	"b64":   {"application/base64", Normal},
	"cab":   {"application/vnd.ms-cab-compressed", None},
	"doc":   {"application/msword", Normal},
	"dot":   {"application/msword", Normal},
	"docm":  {"application/vnd.ms-word.document.macroenabled.12", None},
	"docx":  {"application/vnd.openxmlformats-officedocument.wordprocessingml.document", None},
	"dotm":  {"application/vnd.ms-word.document.macroenabled.12", None},
	"dotx":  {"application/vnd.openxmlformats-officedocument.wordprocessingml.document", None},
	"dll":   {"application/x-msdownload", Normal},
	"dtd":   {"application/xml-dtd", Normal},
	"exe":   {"application/x-msdownload", Normal},
	"gz":    {"application/x-gzip-compressed", None},
	"java":  {"application/java", Normal},
	"json":  {"application/json", Normal},
	"p7s":   {"application/x-pkcs7-signature", Normal},
	"pdf":   {"application/pdf", Normal},
	"ps":    {"application/postscript", Normal},
	"potm":  {"application/vnd.ms-powerpoint.template.macroenabled.12", None},
	"potx":  {"application/vnd.openxmlformats-officedocument.presentationml.template", None},
	"ppam":  {"application/vnd.ms-powerpoint.addin.macroenabled.12", None},
	"ppsm":  {"application/vnd.ms-powerpoint.slideshow.macroenabled.12", None},
	"ppsx":  {"application/vnd.openxmlformats-officedocument.presentationml.slideshow", None},
	"ppt":   {"application/vnd.ms-powerpoint", Normal},
	"pot":   {"application/vnd.ms-powerpoint", Normal},
	"pps":   {"application/vnd.ms-powerpoint", Normal},
	"ppa":   {"application/vnd.ms-powerpoint", Normal},
	"pptm":  {"application/vnd.ms-powerpoint.presentation.macroenabled.12", None},
	"pptx":  {"application/vnd.openxmlformats-officedocument.presentationml.presentation", None},
	"rar":   {"application/x-rar-compressed", None},
	"rss":   {"application/rss+xml", Normal},
	"soap":  {"application/soap+xml", Normal},
	"tar":   {"application/x-tar", None},
	"xaml":  {"application/xaml+xml", Normal},
	"xap":   {"application/x-silverlight-app", None},
	"xbap":  {"application/x-ms-xbap", Normal},
	"xhtml": {"application/xhtml+xml", Normal},
	"xlam":  {"application/vnd.ms-excel.addin.macroenabled.12", None},
	"xls":   {"application/vnd.ms-excel", Normal},
	"xlt":   {"application/vnd.ms-excel", Normal},
	"xla":   {"application/vnd.ms-excel", Normal},
	"xlsb":  {"application/vnd.ms-excel.sheet.binary.macroEnabled.12", None},
	"xlsm":  {"application/vnd.ms-excel.sheet.macroEnabled.12", None},
	"xlsx":  {"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", None},
	"xltm":  {"application/vnd.ms-excel.template.macroEnabled.12", None},
	"xltx":  {"application/vnd.openxmlformats-officedocument.spreadsheetml.template", None},
	"xsl":   {"application/xslt+xml", Normal},
	"xslt":  {"application/xslt+xml", Normal},
	"zip":   {"application/x-zip-compressed", None},

	// Text types
	"c":    {"text/plain", Normal},
	"cpp":  {"text/plain", Normal},
	"cs":   {"text/plain", Normal},
	"css":  {"text/css", Normal},
	"csv":  {"text/csv", Normal},
	"h":    {"text/plain", Normal},
	"htm":  {"text/html", Normal},
	"html": {"text/html", Normal},
	"js":   {"application/x-javascript", Normal},
	"rtf":  {"text/richtext", Normal},
	"sct":  {"text/scriptlet", Normal},
	"txt":  {"text/plain", Normal},
	"xml":  {"text/xml", Normal},
	"xsd":  {"text/xml", Normal},

	// Audio types
	"aiff": {"audio/x-aiff", Normal},
	"au":   {"audio/basic", Normal},
	"m4a":  {"audio/mp4", None},
	"mid":  {"audio/mid", Normal},
	"mp3":  {"audio/mpeg", None},
	"smf":  {"audio/mid", Normal},
	"wav":  {"audio/wav", Normal},
	"wma":  {"audio/x-ms-wma", None},

	// Image types
	"bmp":  {"image/bmp", Normal},
	"emf":  {"image/x-emf", Normal},
	"gif":  {"image/gif", None},
	"ico":  {"image/vnd.microsoft.icon", Normal},
	"jpg":  {"image/jpeg", None},
	"jpeg": {"image/jpeg", None},
	"png":  {"image/png", None},
	"svg":  {"image/svg+xml", Normal},
	"tif":  {"image/tiff", Normal},
	"tiff": {"image/tiff", Normal},
	"wmf":  {"image/x-wmf", Normal},

	// Video types
	"avi":  {"video/avi", None},
	"mpeg": {"video/mpeg", None},
	"mpg":  {"video/mpeg", None},
	"mov":  {"video/quicktime", None},
	"wmv":  {"video/x-ms-wmv", None},
}
