package pathutil

// Category is a coarse classification of a file by extension.
type Category int

const (
	CategoryUnknown Category = iota
	CategoryText
	CategoryDocument
	CategoryImage
	CategoryAudio
	CategoryVideo
	CategoryArchive
	CategoryCode
	CategoryData
	CategoryExecutable
)

func (c Category) String() string {
	switch c {
	case CategoryUnknown:
		return "unknown"
	case CategoryText:
		return "text"
	case CategoryDocument:
		return "document"
	case CategoryImage:
		return "image"
	case CategoryAudio:
		return "audio"
	case CategoryVideo:
		return "video"
	case CategoryArchive:
		return "archive"
	case CategoryCode:
		return "code"
	case CategoryData:
		return "data"
	case CategoryExecutable:
		return "executable"
	default:
		return "unknown"
	}
}

// categoryByExt maps lowercased, dot-free extensions to categories.
var categoryByExt = map[string]Category{
	"txt": CategoryText,
	"md":  CategoryText,
	"rst": CategoryText,
	"log": CategoryText,

	"pdf":  CategoryDocument,
	"doc":  CategoryDocument,
	"docx": CategoryDocument,
	"odt":  CategoryDocument,
	"rtf":  CategoryDocument,
	"xls":  CategoryDocument,
	"xlsx": CategoryDocument,
	"ppt":  CategoryDocument,
	"pptx": CategoryDocument,

	"png":  CategoryImage,
	"jpg":  CategoryImage,
	"jpeg": CategoryImage,
	"gif":  CategoryImage,
	"bmp":  CategoryImage,
	"svg":  CategoryImage,
	"webp": CategoryImage,
	"tiff": CategoryImage,
	"ico":  CategoryImage,

	"mp3":  CategoryAudio,
	"wav":  CategoryAudio,
	"flac": CategoryAudio,
	"ogg":  CategoryAudio,
	"aac":  CategoryAudio,
	"m4a":  CategoryAudio,

	"mp4":  CategoryVideo,
	"mkv":  CategoryVideo,
	"avi":  CategoryVideo,
	"mov":  CategoryVideo,
	"webm": CategoryVideo,
	"wmv":  CategoryVideo,

	"zip": CategoryArchive,
	"tar": CategoryArchive,
	"gz":  CategoryArchive,
	"bz2": CategoryArchive,
	"xz":  CategoryArchive,
	"7z":  CategoryArchive,
	"rar": CategoryArchive,

	"go":    CategoryCode,
	"c":     CategoryCode,
	"h":     CategoryCode,
	"cpp":   CategoryCode,
	"cs":    CategoryCode,
	"java":  CategoryCode,
	"py":    CategoryCode,
	"rb":    CategoryCode,
	"rs":    CategoryCode,
	"js":    CategoryCode,
	"ts":    CategoryCode,
	"swift": CategoryCode,
	"sh":    CategoryCode,
	"lisp":  CategoryCode,

	"json": CategoryData,
	"yaml": CategoryData,
	"yml":  CategoryData,
	"toml": CategoryData,
	"xml":  CategoryData,
	"csv":  CategoryData,
	"sql":  CategoryData,

	"exe": CategoryExecutable,
	"dll": CategoryExecutable,
	"so":  CategoryExecutable,
	"bin": CategoryExecutable,
	"app": CategoryExecutable,
}

// CategoryForExt returns the category for a lowercased, dot-free extension,
// or CategoryUnknown for anything unlisted (including "").
func CategoryForExt(ext string) Category {
	return categoryByExt[ext]
}
