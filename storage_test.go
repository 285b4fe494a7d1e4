package erract_test

import (
	"testing"

	"github.com/ab22593k/erract"
	"github.com/stretchr/testify/require"
)

func TestStorageErrorKind_RetryTable(t *testing.T) {
	retryable := []erract.StorageErrorKind{
		erract.StorageIOError,
		erract.StorageTooManyOpenFiles,
		erract.StorageNetworkError,
		erract.StorageNetworkTimeout,
	}
	for _, k := range retryable {
		require.True(t, k.IsRetryable(), "%v should be retryable", k)
	}

	permanent := []erract.StorageErrorKind{
		erract.StorageNotFound,
		erract.StorageDirectoryNotFound,
		erract.StoragePermissionDenied,
		erract.StorageAlreadyExists,
		erract.StorageIsDirectory,
		erract.StorageNotDirectory,
		erract.StorageDiskFull,
		erract.StorageFileNameTooLong,
		erract.StoragePathTooLong,
		erract.StorageReadOnly,
		erract.StorageFull,
		erract.StorageInvalidFilename,
		erract.StorageInvalidPath,
		erract.StorageSymlinkLoop,
		erract.StorageTooManySymlinks,
	}
	for _, k := range permanent {
		require.False(t, k.IsRetryable(), "%v should not be retryable", k)
	}
}

func TestStorageErrorKind_Categories(t *testing.T) {
	require.Equal(t, "Path", erract.StorageSymlinkLoop.Category())
	require.Equal(t, "Permission", erract.StorageReadOnly.Category())
	require.Equal(t, "Capacity", erract.StorageDiskFull.Category())
	require.Equal(t, "Network", erract.StorageNetworkTimeout.Category())
	require.Equal(t, "I/O", erract.StorageIOError.Category())

	require.True(t, erract.StorageInvalidPath.IsPathError())
	require.True(t, erract.StoragePermissionDenied.IsPermissionError())
	require.True(t, erract.StorageFull.IsCapacityError())
	require.True(t, erract.StorageNetworkError.IsNetworkError())
}

func TestStorageErrorKind_Strings(t *testing.T) {
	require.Equal(t, "storage_not_found", erract.StorageNotFound.MachineString())
	require.Equal(t, "storage_io_error", erract.StorageIOError.MachineString())
	require.Equal(t, "storage_too_many_symlinks", erract.StorageTooManySymlinks.MachineString())

	require.Equal(t, "not found", erract.StorageNotFound.String())
	require.Equal(t, "I/O error", erract.StorageIOError.String())
	require.Equal(t, "disk full", erract.StorageDiskFull.String())
}
