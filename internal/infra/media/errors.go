package media

import "errors"

var (
	// ErrUpload возвращается при ошибке загрузки файла в хранилище
	ErrUpload = errors.New("media.store: failed to upload object")

	// ErrDelete возвращается при ошибке удаления файла из хранилища
	ErrDelete = errors.New("media.store: failed to delete object")

	// ErrBucket возвращается при ошибке проверки или создания bucket
	ErrBucket = errors.New("media.store: failed to ensure bucket")
)
