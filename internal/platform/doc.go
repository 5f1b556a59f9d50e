package platform

// Package platform contains filesystem and OS integration: scanning a folder
// for video files, decoding file-manager URIs, and opening files or folders
// with the system applications.
