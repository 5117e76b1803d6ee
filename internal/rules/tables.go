package rules

import "go.trai.ch/trim/internal/core/domain"

// tables is populated once here and only ever read afterwards. Overlap
// between lists is fine; the pruner deduplicates expanded names.
var tables = map[domain.ModuleKind]RuleSet{

	// Applications keep their full assemble/install loop for the active
	// variant. Per-variant lint is off in every mode because the aggregate
	// lint task covers it.
	domain.KindApplication: {
		AlwaysDisable: []domain.Pattern{
			"lint{VARIANT}",
		},
		DebugOnlyDisable: []domain.Pattern{
			"assemble{VARIANT}",
			"bundle{VARIANT}",
			"install{VARIANT}",
			"report{VARIANT}ComposeMetrics",
			"connected{VARIANT}AndroidTest",
		},
	},

	// Libraries are never installed on a device, so non-active variant
	// assembly and the whole per-variant lint family go away outright.
	// Debug-only additionally drops the aggregate lint task and release
	// artifacts.
	domain.KindLibrary: {
		AlwaysDisable: []domain.Pattern{
			"assemble{VARIANT}",
			"bundle{VARIANT}Aar",
			"lintReport{VARIANT}",
			"lintFix{VARIANT}",
			"updateLintBaseline{VARIANT}",
		},
		DebugOnlyDisable: []domain.Pattern{
			"lint",
			"assembleRelease",
			"bundleReleaseAar",
		},
	},

	// JVM modules are variantless; assembly and lint are aggregated
	// elsewhere, so their local tasks are off in every mode.
	domain.KindJvm: {
		AlwaysDisable: []domain.Pattern{
			"assemble",
			"lint",
			"lintFix",
			"updateLintBaseline",
		},
	},

	// Multiplatform modules carry the iOS toolchain. The iOS list is
	// literal task names for both device and simulator architectures and
	// applies whenever iOS support is off, independent of debug-only.
	domain.KindMultiplatform: {
		DebugOnlyDisable: []domain.Pattern{
			"allTests",
			"publishToMavenLocal",
			"report{VARIANT}ComposeMetrics",
			"connected{VARIANT}AndroidTest",
		},
		IOSDisable: []domain.Pattern{
			"linkDebugFrameworkIosArm64",
			"linkReleaseFrameworkIosArm64",
			"linkDebugFrameworkIosSimulatorArm64",
			"linkReleaseFrameworkIosSimulatorArm64",
			"iosArm64Test",
			"iosSimulatorArm64Test",
			"assembleXCFramework",
			"assembleDebugXCFramework",
			"assembleReleaseXCFramework",
		},
	},

	// Benchmarks only matter on real devices with release-like builds;
	// none of that belongs in a debug-only inner loop.
	domain.KindBenchmark: {
		DebugOnlyDisable: []domain.Pattern{
			"assemble{VARIANT}",
			"install{VARIANT}",
			"connected{VARIANT}AndroidTest",
		},
	},
}
