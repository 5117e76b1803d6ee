package taskgraph

import (
	"go.trai.ch/trim/internal/core/domain"
	"go.trai.ch/zerr"
)

// Seed registers the standard host tasks for the module's kind, plus any
// extra tasks the manifest declares. Which tasks exist depends on the
// module itself: Compose metric tasks exist only for Compose modules, iOS
// tasks only for declared targets, and so on. Rule tables deliberately
// reference tasks some modules never register; those lookups end up as
// soft misses in the prune report.
func Seed(g *Graph, module domain.ModuleConfig) error {
	s := &seeder{g: g}

	switch module.Kind {
	case domain.KindApplication:
		s.application(module)
	case domain.KindLibrary:
		s.library(module)
	case domain.KindJvm:
		s.jvm()
	case domain.KindMultiplatform:
		s.multiplatform(module)
	case domain.KindBenchmark:
		s.benchmark(module)
	default:
		s.err = zerr.With(domain.ErrUnknownModuleKind, "kind", module.Kind.String())
	}

	for _, name := range module.ExtraTasks {
		s.add(name, "Module-defined task.")
	}

	if s.err != nil {
		return zerr.With(s.err, "module", module.Name)
	}
	return nil
}

// seeder accumulates the first registration error so the per-kind catalogs
// read as plain listings.
type seeder struct {
	g   *Graph
	err error
}

func (s *seeder) add(name, description string, deps ...string) {
	if s.err != nil {
		return
	}
	s.err = s.g.Register(name, func() *Task {
		return NewTask(name, description, deps...)
	})
}

func (s *seeder) application(module domain.ModuleConfig) {
	for _, v := range module.Variants {
		assemble := domain.Pattern("assemble{VARIANT}").Expand(v)
		install := domain.Pattern("install{VARIANT}").Expand(v)

		s.add(assemble, "Assembles the "+v.Name+" variant.")
		s.add(domain.Pattern("bundle{VARIANT}").Expand(v), "Builds the "+v.Name+" app bundle.", assemble)
		s.add(install, "Installs the "+v.Name+" build on a connected device.", assemble)
		s.add(domain.Pattern("lint{VARIANT}").Expand(v), "Runs lint on the "+v.Name+" variant.")
		s.add(domain.Pattern("test{VARIANT}UnitTest").Expand(v), "Runs unit tests for the "+v.Name+" variant.")
		s.add(domain.Pattern("connected{VARIANT}AndroidTest").Expand(v), "Runs device tests for the "+v.Name+" variant.", install)
		if module.Compose {
			s.add(domain.Pattern("report{VARIANT}ComposeMetrics").Expand(v), "Writes Compose compiler metrics for the "+v.Name+" variant.", assemble)
		}
	}

	s.add("assemble", "Assembles all variants.", expandAll("assemble{VARIANT}", module.Variants)...)
	s.add("lint", "Runs lint on the default variant.", expandAll("lint{VARIANT}", module.Variants)...)
	s.add("check", "Runs all checks.", append(expandAll("test{VARIANT}UnitTest", module.Variants), "lint")...)
}

func (s *seeder) library(module domain.ModuleConfig) {
	for _, v := range module.Variants {
		assemble := domain.Pattern("assemble{VARIANT}").Expand(v)

		s.add(assemble, "Assembles the "+v.Name+" variant.")
		s.add(domain.Pattern("bundle{VARIANT}Aar").Expand(v), "Packages the "+v.Name+" AAR.", assemble)
		s.add(domain.Pattern("lintReport{VARIANT}").Expand(v), "Writes the lint report for the "+v.Name+" variant.")
		s.add(domain.Pattern("lintFix{VARIANT}").Expand(v), "Applies safe lint fixes to the "+v.Name+" variant.")
		s.add(domain.Pattern("updateLintBaseline{VARIANT}").Expand(v), "Rewrites the lint baseline for the "+v.Name+" variant.")
		s.add(domain.Pattern("test{VARIANT}UnitTest").Expand(v), "Runs unit tests for the "+v.Name+" variant.")
		if module.Compose {
			s.add(domain.Pattern("report{VARIANT}ComposeMetrics").Expand(v), "Writes Compose compiler metrics for the "+v.Name+" variant.", assemble)
		}
	}

	s.add("assemble", "Assembles all variants.", expandAll("assemble{VARIANT}", module.Variants)...)
	s.add("lint", "Runs lint on the default variant.", expandAll("lintReport{VARIANT}", module.Variants)...)
	s.add("check", "Runs all checks.", append(expandAll("test{VARIANT}UnitTest", module.Variants), "lint")...)
}

func (s *seeder) jvm() {
	s.add("jar", "Packages the class files.")
	s.add("assemble", "Assembles the module outputs.", "jar")
	s.add("lint", "Runs lint.")
	s.add("lintFix", "Applies safe lint fixes.")
	s.add("updateLintBaseline", "Rewrites the lint baseline.")
	s.add("test", "Runs the test suite.")
	s.add("check", "Runs all checks.", "test", "lint")
}

func (s *seeder) multiplatform(module domain.ModuleConfig) {
	for _, v := range module.Variants {
		assemble := domain.Pattern("assemble{VARIANT}").Expand(v)

		s.add(assemble, "Assembles the "+v.Name+" variant.")
		s.add(domain.Pattern("test{VARIANT}UnitTest").Expand(v), "Runs unit tests for the "+v.Name+" variant.")
		s.add(domain.Pattern("connected{VARIANT}AndroidTest").Expand(v), "Runs device tests for the "+v.Name+" variant.", assemble)
		if module.Compose {
			s.add(domain.Pattern("report{VARIANT}ComposeMetrics").Expand(v), "Writes Compose compiler metrics for the "+v.Name+" variant.", assemble)
		}
	}

	allTests := append(expandAll("test{VARIANT}UnitTest", module.Variants), iosTestTasks(module.IOSTargets)...)
	s.add("allTests", "Runs the test suites of every target.", allTests...)
	s.add("publishToMavenLocal", "Publishes every publication to the local Maven repository.", expandAll("assemble{VARIANT}", module.Variants)...)

	var debugLinks, releaseLinks []string
	for _, target := range module.IOSTargets {
		asVariant := domain.Variant{Name: target}
		debugLink := domain.Pattern("linkDebugFramework{VARIANT}").Expand(asVariant)
		releaseLink := domain.Pattern("linkReleaseFramework{VARIANT}").Expand(asVariant)
		debugLinks = append(debugLinks, debugLink)
		releaseLinks = append(releaseLinks, releaseLink)

		s.add(debugLink, "Links the debug framework for "+target+".")
		s.add(releaseLink, "Links the release framework for "+target+".")
		s.add(target+"Test", "Runs the "+target+" test binary.", debugLink)
	}
	if len(module.IOSTargets) > 0 {
		s.add("assembleDebugXCFramework", "Bundles the debug XCFramework.", debugLinks...)
		s.add("assembleReleaseXCFramework", "Bundles the release XCFramework.", releaseLinks...)
		s.add("assembleXCFramework", "Bundles all XCFrameworks.", "assembleDebugXCFramework", "assembleReleaseXCFramework")
	}
}

func (s *seeder) benchmark(module domain.ModuleConfig) {
	for _, v := range module.Variants {
		assemble := domain.Pattern("assemble{VARIANT}").Expand(v)
		install := domain.Pattern("install{VARIANT}").Expand(v)

		s.add(assemble, "Assembles the "+v.Name+" benchmark APK.")
		s.add(install, "Installs the "+v.Name+" benchmark APK.", assemble)
		s.add(domain.Pattern("connected{VARIANT}AndroidTest").Expand(v), "Runs the "+v.Name+" benchmarks on a connected device.", install)
	}

	s.add("assemble", "Assembles all variants.", expandAll("assemble{VARIANT}", module.Variants)...)
}

func expandAll(pattern domain.Pattern, variants []domain.Variant) []string {
	names := make([]string, 0, len(variants))
	for _, v := range variants {
		names = append(names, pattern.Expand(v))
	}
	return names
}

func iosTestTasks(targets []string) []string {
	names := make([]string, 0, len(targets))
	for _, target := range targets {
		names = append(names, target+"Test")
	}
	return names
}
