package domain

// Field names of the record store.
const (
	KeyIndex      = "index"
	KeyType       = "type"
	KeyWords      = "words"
	KeyWordsSep   = "words_sep"
	KeyTodi       = "todi"
	KeyTodiSep    = "todi_sep"
	KeyWordsOCR   = "words_ocr"
	KeyTodiOCR    = "todi_ocr"
	KeyExerciseID = "exercise_id"
	KeyPageURL    = "page_url"
	KeyPageTitle  = "page_title"
	KeySoundURL   = "sound_url"
	KeySoundFile  = "sound_file"
	KeyImageURL   = "image_url"
	KeyImageFile  = "image_file"
)
