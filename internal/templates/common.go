package templates

import "fmt"

// PlaceholderProgramID is the well-known placeholder key Anchor emits for
// freshly initialized programs; it is replaced on first deploy.
const PlaceholderProgramID = "Fg6PaFpoGXkYsidMpWTK6W2BeZ7FEfcYkg476zPFsLnS"

// npm package versions shared across templates.
const (
	verAnchor   = "^0.29.0"
	verWeb3     = "^1.87.6"
	verSplToken = "^0.3.9"
)

// baseDependencies returns the runtime dependencies every template needs.
func baseDependencies() DependencyMap {
	return DependencyMap{
		"@coral-xyz/anchor": verAnchor,
		"@solana/web3.js":   verWeb3,
	}
}

// tokenDependencies returns runtime dependencies for templates that move
// SPL tokens.
func tokenDependencies() DependencyMap {
	deps := baseDependencies()
	deps["@solana/spl-token"] = verSplToken
	return deps
}

// baseDevDependencies returns the development dependencies every template
// needs for its mocha test stub.
func baseDevDependencies() DependencyMap {
	return DependencyMap{
		"typescript":   "^4.3.5",
		"ts-mocha":     "^10.0.0",
		"mocha":        "^9.0.3",
		"chai":         "^4.3.4",
		"@types/mocha": "^9.0.0",
		"@types/chai":  "^4.3.0",
		"@types/bn.js": "^5.1.0",
		"prettier":     "^2.6.2",
	}
}

// commonFiles returns the files shared by all templates: the program crate
// manifests, the deployment script, and editor/tooling config.
func commonFiles(ctx Context) []File {
	prog := ctx.ProgramName()
	return []File{
		{
			Path: fmt.Sprintf("programs/%s/Cargo.toml", prog),
			Content: fmt.Sprintf(`[package]
name = "%s"
version = "0.1.0"
description = "Created with solforge"
edition = "2021"

[lib]
crate-type = ["cdylib", "lib"]
name = "%s"

[features]
no-entrypoint = []
no-idl = []
no-log-ix-name = []
cpi = ["no-entrypoint"]
default = []

[dependencies]
anchor-lang = "0.29.0"
anchor-spl = "0.29.0"
`, prog, prog),
		},
		{
			Path: fmt.Sprintf("programs/%s/Xargo.toml", prog),
			Content: `[target.bpfel-unknown-unknown.dependencies.std]
features = []
`,
		},
		{
			Path: "migrations/deploy.ts",
			Content: `// Migrations are an early feature. Currently, they're nothing more than this
// single deploy script that's invoked from the CLI, injecting a provider
// configured from the workspace's Anchor.toml.

import * as anchor from "@coral-xyz/anchor";

module.exports = async function (provider: anchor.AnchorProvider) {
  anchor.setProvider(provider);

  // Add your deploy script here.
};
`,
		},
		{
			Path: "tsconfig.json",
			Content: `{
  "compilerOptions": {
    "types": ["mocha", "chai"],
    "typeRoots": ["./node_modules/@types"],
    "lib": ["es2015"],
    "module": "commonjs",
    "target": "es6",
    "esModuleInterop": true
  }
}
`,
		},
		{
			Path: ".gitignore",
			Content: `.anchor
.DS_Store
target
node_modules
dist
build
test-ledger
`,
		},
	}
}

// declareID renders the Anchor declare_id! line shared by all lib.rs stubs.
func declareID() string {
	return fmt.Sprintf("declare_id!(\"%s\");", PlaceholderProgramID)
}

// readme renders a README with the standard workspace instructions.
func readme(ctx Context, title, blurb string) File {
	return File{
		Path: "README.md",
		Content: fmt.Sprintf(`# %s

%s

Generated with solforge from the %s template.

## Structure

- programs/%s — Anchor program source
- tests/ — ts-mocha integration tests
- app/ — TypeScript client SDK
- migrations/ — deployment scripts

## Usage

`+"```"+`sh
anchor build
anchor test
anchor deploy
`+"```"+`
`, ctx.ProjectName, blurb, title, ctx.ProgramName()),
	}
}
