package templates

import "fmt"

// Staking returns the descriptor for the token staking template: stake
// SPL tokens and accrue rewards at a configurable rate.
func Staking() Descriptor {
	rewardRate := NumberValue(10)
	lockPeriod := NumberValue(7)
	return Descriptor{
		ID:          "staking",
		Name:        "Token Staking",
		Description: "Stake SPL tokens and accrue time-based rewards",
		Options: []Option{
			{
				Name:        "rewardRate",
				Flag:        "reward-rate",
				Description: "Reward rate in basis points per epoch (1-10000)",
				Type:        TypeNumber,
				Default:     &rewardRate,
				Validate:    NumberRange(1, 10000),
			},
			{
				Name:        "lockPeriod",
				Flag:        "lock-period",
				Description: "Minimum staking period in days (0-365)",
				Type:        TypeNumber,
				Default:     &lockPeriod,
				Validate:    NumberRange(0, 365),
			},
		},
		Generator: stakingGenerator{},
	}
}

type stakingGenerator struct{}

func (stakingGenerator) Generate(ctx Context) []File {
	prog := ctx.ProgramName()
	rate := ctx.Options["rewardRate"]
	lock := ctx.Options["lockPeriod"]

	files := []File{
		{
			Path: fmt.Sprintf("programs/%s/src/lib.rs", prog),
			Content: fmt.Sprintf(`use anchor_lang::prelude::*;
use anchor_spl::token::{Token, TokenAccount};

%s

pub const REWARD_RATE_BPS: u64 = %s;
pub const LOCK_PERIOD_DAYS: i64 = %s;

#[program]
pub mod %s {
    use super::*;

    pub fn stake(ctx: Context<Stake>, amount: u64) -> Result<()> {
        require!(amount > 0, StakingError::ZeroAmount);
        let position = &mut ctx.accounts.position;
        position.owner = ctx.accounts.staker.key();
        position.amount = amount;
        position.staked_at = Clock::get()?.unix_timestamp;
        Ok(())
    }

    pub fn unstake(ctx: Context<Unstake>) -> Result<()> {
        let position = &ctx.accounts.position;
        let now = Clock::get()?.unix_timestamp;
        let unlock_at = position.staked_at + LOCK_PERIOD_DAYS * 86_400;
        require!(now >= unlock_at, StakingError::StillLocked);
        Ok(())
    }

    pub fn claim_rewards(ctx: Context<ClaimRewards>) -> Result<()> {
        let position = &ctx.accounts.position;
        let elapsed = Clock::get()?.unix_timestamp - position.staked_at;
        let _reward = position
            .amount
            .checked_mul(REWARD_RATE_BPS)
            .and_then(|v| v.checked_mul(elapsed as u64))
            .map(|v| v / 10_000)
            .ok_or(StakingError::Overflow)?;
        Ok(())
    }
}

#[derive(Accounts)]
pub struct Stake<'info> {
    #[account(init, payer = staker, space = 8 + Position::SIZE)]
    pub position: Account<'info, Position>,
    #[account(mut)]
    pub staker_token: Account<'info, TokenAccount>,
    #[account(mut)]
    pub staker: Signer<'info>,
    pub token_program: Program<'info, Token>,
    pub system_program: Program<'info, System>,
}

#[derive(Accounts)]
pub struct Unstake<'info> {
    #[account(mut, has_one = owner)]
    pub position: Account<'info, Position>,
    pub owner: Signer<'info>,
}

#[derive(Accounts)]
pub struct ClaimRewards<'info> {
    #[account(has_one = owner)]
    pub position: Account<'info, Position>,
    pub owner: Signer<'info>,
}

#[account]
pub struct Position {
    pub owner: Pubkey,
    pub amount: u64,
    pub staked_at: i64,
}

impl Position {
    pub const SIZE: usize = 32 + 8 + 8;
}

#[error_code]
pub enum StakingError {
    #[msg("Amount must be greater than zero")]
    ZeroAmount,
    #[msg("Position is still locked")]
    StillLocked,
    #[msg("Reward calculation overflowed")]
    Overflow,
}
`, declareID(), rate.String(), lock.String(), prog),
		},
		{
			Path: fmt.Sprintf("tests/%s.ts", prog),
			Content: fmt.Sprintf(`import * as anchor from "@coral-xyz/anchor";
import { expect } from "chai";

describe("%s", () => {
  const provider = anchor.AnchorProvider.env();
  anchor.setProvider(provider);

  const program = anchor.workspace.%s;

  it("stakes tokens", async () => {
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
export const REWARD_RATE_BPS = %s;
export const LOCK_PERIOD_DAYS = %s;

export async function stake(
  program: anchor.Program,
  position: PublicKey,
  amount: anchor.BN
): Promise<string> {
  return program.methods.stake(amount).accounts({ position }).rpc();
}

export async function unstake(
  program: anchor.Program,
  position: PublicKey
): Promise<string> {
  return program.methods.unstake().accounts({ position }).rpc();
}
`, PlaceholderProgramID, rate.String(), lock.String()),
		},
		readme(ctx, "staking", "An Anchor program for staking SPL tokens with a lock period and basis-point reward accrual."),
	}

	return append(files, commonFiles(ctx)...)
}

func (stakingGenerator) Dependencies(Context) DependencyMap {
	return tokenDependencies()
}

func (stakingGenerator) DevDependencies(Context) DependencyMap {
	return baseDevDependencies()
}
