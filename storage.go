package erract

// StorageErrorKind is the closed catalog of filesystem and object-storage
// failure kinds, categorized by what the caller should do. It implements
// ErrorKind.
type StorageErrorKind int

const (
	// StorageNotFound: file or object does not exist.
	StorageNotFound StorageErrorKind = iota
	// StorageDirectoryNotFound: directory does not exist.
	StorageDirectoryNotFound
	// StoragePermissionDenied: access refused. Fix permissions.
	StoragePermissionDenied
	// StorageAlreadyExists: the target exists when it shouldn't.
	StorageAlreadyExists
	// StorageIsDirectory: expected a file, found a directory.
	StorageIsDirectory
	// StorageNotDirectory: expected a directory, found a file.
	StorageNotDirectory
	// StorageDiskFull: disk full or quota exceeded.
	StorageDiskFull
	// StorageIOError: disk I/O failure. Retry.
	StorageIOError
	// StorageFileNameTooLong: shorten the name.
	StorageFileNameTooLong
	// StoragePathTooLong: shorten the path.
	StoragePathTooLong
	// StorageTooManyOpenFiles: descriptor limit hit. Retry after closing files.
	StorageTooManyOpenFiles
	// StorageReadOnly: the device is read-only.
	StorageReadOnly
	// StorageFull: the device is full.
	StorageFull
	// StorageNetworkError: network storage connectivity failure. Retry.
	StorageNetworkError
	// StorageNetworkTimeout: network storage timeout. Retry with a longer timeout.
	StorageNetworkTimeout
	// StorageInvalidFilename: fix the filename.
	StorageInvalidFilename
	// StorageInvalidPath: fix the path.
	StorageInvalidPath
	// StorageSymlinkLoop: symlink loop detected. Fix the links.
	StorageSymlinkLoop
	// StorageTooManySymlinks: symlink depth exceeded. Simplify the structure.
	StorageTooManySymlinks
)

// IsRetryable reports the static retry hint for the kind. Only transient
// I/O, descriptor pressure and network conditions are worth retrying.
func (k StorageErrorKind) IsRetryable() bool {
	switch k {
	case StorageIOError, StorageTooManyOpenFiles, StorageNetworkError, StorageNetworkTimeout:
		return true
	default:
		return false
	}
}

// IsPathError reports whether the kind concerns path resolution.
func (k StorageErrorKind) IsPathError() bool {
	switch k {
	case StorageNotFound, StorageDirectoryNotFound, StorageInvalidPath,
		StorageInvalidFilename, StorageIsDirectory, StorageNotDirectory,
		StorageSymlinkLoop, StorageTooManySymlinks:
		return true
	default:
		return false
	}
}

// IsPermissionError reports whether the kind concerns access rights.
func (k StorageErrorKind) IsPermissionError() bool {
	return k == StoragePermissionDenied || k == StorageReadOnly
}

// IsCapacityError reports whether the kind concerns exhausted capacity.
func (k StorageErrorKind) IsCapacityError() bool {
	return k == StorageDiskFull || k == StorageFull || k == StorageTooManyOpenFiles
}

// IsNetworkError reports whether the kind concerns network storage.
func (k StorageErrorKind) IsNetworkError() bool {
	return k == StorageNetworkError || k == StorageNetworkTimeout
}

// Category returns a coarse category label for the kind.
func (k StorageErrorKind) Category() string {
	switch {
	case k.IsPathError():
		return "Path"
	case k.IsPermissionError():
		return "Permission"
	case k.IsCapacityError():
		return "Capacity"
	case k.IsNetworkError():
		return "Network"
	case k == StorageIOError:
		return "I/O"
	default:
		return "Other"
	}
}

// MachineString returns the stable wire representation, prefixed "storage_".
func (k StorageErrorKind) MachineString() string {
	if name, ok := storageMachineNames[k]; ok {
		return "storage_" + name
	}
	return "storage_unknown"
}

var storageMachineNames = map[StorageErrorKind]string{
	StorageNotFound:          "not_found",
	StorageDirectoryNotFound: "directory_not_found",
	StoragePermissionDenied:  "permission_denied",
	StorageAlreadyExists:     "already_exists",
	StorageIsDirectory:       "is_directory",
	StorageNotDirectory:      "not_directory",
	StorageDiskFull:          "disk_full",
	StorageIOError:           "io_error",
	StorageFileNameTooLong:   "file_name_too_long",
	StoragePathTooLong:       "path_too_long",
	StorageTooManyOpenFiles:  "too_many_open_files",
	StorageReadOnly:          "read_only",
	StorageFull:              "storage_full",
	StorageNetworkError:      "network_error",
	StorageNetworkTimeout:    "network_timeout",
	StorageInvalidFilename:   "invalid_filename",
	StorageInvalidPath:       "invalid_path",
	StorageSymlinkLoop:       "symlink_loop",
	StorageTooManySymlinks:   "too_many_symlinks",
}

// String returns the human-readable name of the kind.
func (k StorageErrorKind) String() string {
	switch k {
	case StorageNotFound:
		return "not found"
	case StorageDirectoryNotFound:
		return "directory not found"
	case StoragePermissionDenied:
		return "permission denied"
	case StorageAlreadyExists:
		return "already exists"
	case StorageIsDirectory:
		return "is a directory"
	case StorageNotDirectory:
		return "is not a directory"
	case StorageDiskFull:
		return "disk full"
	case StorageIOError:
		return "I/O error"
	case StorageFileNameTooLong:
		return "file name too long"
	case StoragePathTooLong:
		return "path too long"
	case StorageTooManyOpenFiles:
		return "too many open files"
	case StorageReadOnly:
		return "read-only"
	case StorageFull:
		return "storage full"
	case StorageNetworkError:
		return "network error"
	case StorageNetworkTimeout:
		return "network timeout"
	case StorageInvalidFilename:
		return "invalid filename"
	case StorageInvalidPath:
		return "invalid path"
	case StorageSymlinkLoop:
		return "symlink loop"
	case StorageTooManySymlinks:
		return "too many symbolic links"
	default:
		return "unknown"
	}
}
