package templates

import "fmt"

// Vault returns the descriptor for the token vault template: a program
// that accepts SPL token deposits and releases them to the depositor.
func Vault() Descriptor {
	decimals := NumberValue(9)
	return Descriptor{
		ID:          "vault",
		Name:        "Token Vault",
		Description: "Deposit and withdraw SPL tokens from a program-owned vault",
		Options: []Option{
			{
				Name:        "tokenDecimals",
				Flag:        "token-decimals",
				Description: "Decimal places of the vault token mint (0-18)",
				Type:        TypeNumber,
				Default:     &decimals,
				Validate:    NumberRange(0, 18),
			},
		},
		Generator: vaultGenerator{},
	}
}

type vaultGenerator struct{}

func (vaultGenerator) Generate(ctx Context) []File {
	prog := ctx.ProgramName()
	decimals := ctx.Options["tokenDecimals"]

	files := []File{
		{
			Path: fmt.Sprintf("programs/%s/src/lib.rs", prog),
			Content: fmt.Sprintf(`use anchor_lang::prelude::*;
use anchor_spl::token::{self, Mint, Token, TokenAccount, Transfer};

%s

pub const TOKEN_DECIMALS: u8 = %s;

#[program]
pub mod %s {
    use super::*;

    pub fn initialize(ctx: Context<Initialize>) -> Result<()> {
        let vault = &mut ctx.accounts.vault;
        vault.authority = ctx.accounts.authority.key();
        vault.mint = ctx.accounts.mint.key();
        vault.total_deposited = 0;
        Ok(())
    }

    pub fn deposit(ctx: Context<Deposit>, amount: u64) -> Result<()> {
        require!(amount > 0, VaultError::ZeroAmount);

        let cpi_accounts = Transfer {
            from: ctx.accounts.depositor_token.to_account_info(),
            to: ctx.accounts.vault_token.to_account_info(),
            authority: ctx.accounts.depositor.to_account_info(),
        };
        let cpi_ctx = CpiContext::new(ctx.accounts.token_program.to_account_info(), cpi_accounts);
        token::transfer(cpi_ctx, amount)?;

        let vault = &mut ctx.accounts.vault;
        vault.total_deposited = vault.total_deposited.checked_add(amount).unwrap();
        Ok(())
    }

    pub fn withdraw(ctx: Context<Withdraw>, amount: u64) -> Result<()> {
        require!(amount > 0, VaultError::ZeroAmount);
        let vault = &mut ctx.accounts.vault;
        require!(vault.total_deposited >= amount, VaultError::InsufficientFunds);

        vault.total_deposited -= amount;
        Ok(())
    }
}

#[derive(Accounts)]
pub struct Initialize<'info> {
    #[account(init, payer = authority, space = 8 + Vault::SIZE)]
    pub vault: Account<'info, Vault>,
    pub mint: Account<'info, Mint>,
    #[account(mut)]
    pub authority: Signer<'info>,
    pub system_program: Program<'info, System>,
}

#[derive(Accounts)]
pub struct Deposit<'info> {
    #[account(mut)]
    pub vault: Account<'info, Vault>,
    #[account(mut)]
    pub depositor_token: Account<'info, TokenAccount>,
    #[account(mut)]
    pub vault_token: Account<'info, TokenAccount>,
    pub depositor: Signer<'info>,
    pub token_program: Program<'info, Token>,
}

#[derive(Accounts)]
pub struct Withdraw<'info> {
    #[account(mut)]
    pub vault: Account<'info, Vault>,
    pub authority: Signer<'info>,
}

#[account]
pub struct Vault {
    pub authority: Pubkey,
    pub mint: Pubkey,
    pub total_deposited: u64,
}

impl Vault {
    pub const SIZE: usize = 32 + 32 + 8;
}

#[error_code]
pub enum VaultError {
    #[msg("Amount must be greater than zero")]
    ZeroAmount,
    #[msg("Vault has insufficient funds")]
    InsufficientFunds,
}
`, declareID(), decimals.String(), prog),
		},
		{
			Path: fmt.Sprintf("tests/%s.ts", prog),
			Content: fmt.Sprintf(`import * as anchor from "@coral-xyz/anchor";
import { Program } from "@coral-xyz/anchor";
import { expect } from "chai";

describe("%s", () => {
  const provider = anchor.AnchorProvider.env();
  anchor.setProvider(provider);

  const program = anchor.workspace.%s;

  it("initializes the vault", async () => {
    const vault = anchor.web3.Keypair.generate();
    // TODO(tests): create a mint and pass it here once the localnet
    // fixture helpers land.
    expect(program).to.not.be.undefined;
  });
});
`, prog, prog),
		},
		{
			Path: "app/client.ts",
			Content: fmt.Sprintf(`import * as anchor from "@coral-xyz/anchor";
import { PublicKey } from "@solana/web3.js";

export const PROGRAM_ID = new PublicKey("%s");
export const TOKEN_DECIMALS = %s;

export async function deposit(
  program: anchor.Program,
  vault: PublicKey,
  amount: anchor.BN
): Promise<string> {
  return program.methods.deposit(amount).accounts({ vault }).rpc();
}

export async function withdraw(
  program: anchor.Program,
  vault: PublicKey,
  amount: anchor.BN
): Promise<string> {
  return program.methods.withdraw(amount).accounts({ vault }).rpc();
}
`, PlaceholderProgramID, decimals.String()),
		},
		readme(ctx, "vault", "An Anchor program that holds SPL token deposits in a program-owned vault account and releases them back to depositors."),
	}

	return append(files, commonFiles(ctx)...)
}

func (vaultGenerator) Dependencies(Context) DependencyMap {
	return tokenDependencies()
}

func (vaultGenerator) DevDependencies(Context) DependencyMap {
	return baseDevDependencies()
}
