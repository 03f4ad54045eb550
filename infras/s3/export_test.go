package s3

var ObjectNameFromURL = objectNameFromURL
