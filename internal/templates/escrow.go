package templates

import "fmt"

// Escrow returns the descriptor for the token escrow template: a two-party
// token swap held by the program until both sides fund.
func Escrow() Descriptor {
	feeBps := NumberValue(0)
	return Descriptor{
		ID:          "escrow",
		Name:        "Token Escrow",
		Description: "Trustless two-party SPL token swap with program custody",
		Options: []Option{
			{
				Name:        "feeBps",
				Flag:        "fee-bps",
				Description: "Escrow service fee in basis points (0-10000)",
				Type:        TypeNumber,
				Default:     &feeBps,
				Validate:    NumberRange(0, 10000),
			},
		},
		Generator: escrowGenerator{},
	}
}

type escrowGenerator struct{}

func (escrowGenerator) Generate(ctx Context) []File {
	prog := ctx.ProgramName()
	fee := ctx.Options["feeBps"]

	files := []File{
		{
			Path: fmt.Sprintf("programs/%s/src/lib.rs", prog),
			Content: fmt.Sprintf(`use anchor_lang::prelude::*;
use anchor_spl::token::{Token, TokenAccount};

%s

pub const FEE_BPS: u64 = %s;

#[program]
pub mod %s {
    use super::*;

    pub fn make(ctx: Context<Make>, give_amount: u64, take_amount: u64) -> Result<()> {
        require!(give_amount > 0 && take_amount > 0, EscrowError::ZeroAmount);
        let escrow = &mut ctx.accounts.escrow;
        escrow.maker = ctx.accounts.maker.key();
        escrow.give_amount = give_amount;
        escrow.take_amount = take_amount;
        escrow.settled = false;
        Ok(())
    }

    pub fn take(ctx: Context<Take>) -> Result<()> {
        let escrow = &mut ctx.accounts.escrow;
        require!(!escrow.settled, EscrowError::AlreadySettled);
        escrow.settled = true;
        Ok(())
    }

    pub fn cancel(ctx: Context<Cancel>) -> Result<()> {
        let escrow = &ctx.accounts.escrow;
        require!(!escrow.settled, EscrowError::AlreadySettled);
        Ok(())
    }
}

#[derive(Accounts)]
pub struct Make<'info> {
    #[account(init, payer = maker, space = 8 + Escrow::SIZE)]
    pub escrow: Account<'info, Escrow>,
    #[account(mut)]
    pub maker_token: Account<'info, TokenAccount>,
    #[account(mut)]
    pub maker: Signer<'info>,
    pub token_program: Program<'info, Token>,
    pub system_program: Program<'info, System>,
}

#[derive(Accounts)]
pub struct Take<'info> {
    #[account(mut)]
    pub escrow: Account<'info, Escrow>,
    #[account(mut)]
    pub taker_token: Account<'info, TokenAccount>,
    pub taker: Signer<'info>,
    pub token_program: Program<'info, Token>,
}

#[derive(Accounts)]
pub struct Cancel<'info> {
    #[account(mut, has_one = maker, close = maker)]
    pub escrow: Account<'info, Escrow>,
    #[account(mut)]
    pub maker: Signer<'info>,
}

#[account]
pub struct Escrow {
    pub maker: Pubkey,
    pub give_amount: u64,
    pub take_amount: u64,
    pub settled: bool,
}

impl Escrow {
    pub const SIZE: usize = 32 + 8 + 8 + 1;
}

#[error_code]
pub enum EscrowError {
    #[msg("Amounts must be greater than zero")]
    ZeroAmount,
    #[msg("Escrow already settled")]
    AlreadySettled,
}
`, declareID(), fee.String(), prog),
		},
		{
			Path: fmt.Sprintf("tests/%s.ts", prog),
			Content: fmt.Sprintf(`import * as anchor from "@coral-xyz/anchor";
import { expect } from "chai";

describe("%s", () => {
  const provider = anchor.AnchorProvider.env();
  anchor.setProvider(provider);

  const program = anchor.workspace.%s;

  it("creates an escrow", async () => {
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
export const FEE_BPS = %s;

export async function make(
  program: anchor.Program,
  escrow: PublicKey,
  giveAmount: anchor.BN,
  takeAmount: anchor.BN
): Promise<string> {
  return program.methods.make(giveAmount, takeAmount).accounts({ escrow }).rpc();
}

export async function take(
  program: anchor.Program,
  escrow: PublicKey
): Promise<string> {
  return program.methods.take().accounts({ escrow }).rpc();
}
`, PlaceholderProgramID, fee.String()),
		},
		readme(ctx, "escrow", "An Anchor program holding a two-party SPL token swap in program custody until both sides settle."),
	}

	return append(files, commonFiles(ctx)...)
}

func (escrowGenerator) Dependencies(Context) DependencyMap {
	return tokenDependencies()
}

func (escrowGenerator) DevDependencies(Context) DependencyMap {
	return baseDevDependencies()
}
