package templates

import "fmt"

// Marketplace returns the descriptor for the NFT marketplace template:
// list, delist, and purchase NFTs with a configurable house fee.
func Marketplace() Descriptor {
	feeBps := NumberValue(250)
	return Descriptor{
		ID:          "marketplace",
		Name:        "NFT Marketplace",
		Description: "List and purchase NFTs with a configurable marketplace fee",
		Options: []Option{
			{
				Name:        "feeBps",
				Flag:        "fee-bps",
				Description: "Marketplace fee in basis points (0-10000)",
				Type:        TypeNumber,
				Default:     &feeBps,
				Validate:    NumberRange(0, 10000),
			},
		},
		Generator: marketplaceGenerator{},
	}
}

type marketplaceGenerator struct{}

func (marketplaceGenerator) Generate(ctx Context) []File {
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

    pub fn list(ctx: Context<List>, price: u64) -> Result<()> {
        require!(price > 0, MarketplaceError::ZeroPrice);
        let listing = &mut ctx.accounts.listing;
        listing.seller = ctx.accounts.seller.key();
        listing.price = price;
        listing.active = true;
        Ok(())
    }

    pub fn delist(ctx: Context<Delist>) -> Result<()> {
        let listing = &mut ctx.accounts.listing;
        require!(listing.active, MarketplaceError::NotListed);
        listing.active = false;
        Ok(())
    }

    pub fn purchase(ctx: Context<Purchase>) -> Result<()> {
        let listing = &mut ctx.accounts.listing;
        require!(listing.active, MarketplaceError::NotListed);

        let fee = listing.price.checked_mul(FEE_BPS).unwrap() / 10_000;
        let _seller_proceeds = listing.price.checked_sub(fee).unwrap();

        listing.active = false;
        Ok(())
    }
}

#[derive(Accounts)]
pub struct List<'info> {
    #[account(init, payer = seller, space = 8 + Listing::SIZE)]
    pub listing: Account<'info, Listing>,
    #[account(mut)]
    pub nft_token: Account<'info, TokenAccount>,
    #[account(mut)]
    pub seller: Signer<'info>,
    pub token_program: Program<'info, Token>,
    pub system_program: Program<'info, System>,
}

#[derive(Accounts)]
pub struct Delist<'info> {
    #[account(mut, has_one = seller)]
    pub listing: Account<'info, Listing>,
    pub seller: Signer<'info>,
}

#[derive(Accounts)]
pub struct Purchase<'info> {
    #[account(mut)]
    pub listing: Account<'info, Listing>,
    #[account(mut)]
    pub buyer: Signer<'info>,
    pub token_program: Program<'info, Token>,
}

#[account]
pub struct Listing {
    pub seller: Pubkey,
    pub price: u64,
    pub active: bool,
}

impl Listing {
    pub const SIZE: usize = 32 + 8 + 1;
}

#[error_code]
pub enum MarketplaceError {
    #[msg("Price must be greater than zero")]
    ZeroPrice,
    #[msg("Listing is not active")]
    NotListed,
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

  it("creates a listing", async () => {
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

export async function list(
  program: anchor.Program,
  listing: PublicKey,
  price: anchor.BN
): Promise<string> {
  return program.methods.list(price).accounts({ listing }).rpc();
}

export async function purchase(
  program: anchor.Program,
  listing: PublicKey
): Promise<string> {
  return program.methods.purchase().accounts({ listing }).rpc();
}
`, PlaceholderProgramID, fee.String()),
		},
		readme(ctx, "marketplace", "An Anchor program for listing and purchasing NFTs with a basis-point marketplace fee."),
	}

	return append(files, commonFiles(ctx)...)
}

func (marketplaceGenerator) Dependencies(Context) DependencyMap {
	return tokenDependencies()
}

func (marketplaceGenerator) DevDependencies(Context) DependencyMap {
	return baseDevDependencies()
}
