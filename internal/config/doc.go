// Package config provides configuration for vtl test runs.
//
// Configuration comes from an optional vtl.json at the project root and is
// then overridden by environment variables, so CI can tweak a run without
// touching the repository.
//
// # Configuration File Structure
//
//	{
//	  "testIdAttribute": "data-testid",
//	  "asyncTimeout": "1s",
//	  "asyncInterval": "50ms",
//	  "debugPrintLimit": 7000,
//	  "skipAutoCleanup": false,
//	  "defaultHidden": false,
//	  "colors": "auto"
//	}
//
// # Environment Variables
//
//	VTL_SKIP_AUTO_CLEANUP   disable automatic cleanup after each test
//	DEBUG_PRINT_LIMIT       max characters printed by Debug/PrettyDOM
//	VTL_ASYNC_TIMEOUT       default timeout of Find*/WaitFor (Go duration)
//	VTL_TEST_ID_ATTRIBUTE   attribute used by the TestId queries
//	VTL_COLORS              auto, always or never
package config
