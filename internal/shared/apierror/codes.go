package apierror

const CodeInvalidInput = "INVALID_INPUT"
