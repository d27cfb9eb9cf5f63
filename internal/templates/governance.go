package templates

import "fmt"

// Governance returns the descriptor for the DAO governance template:
// proposal creation and token-weighted voting.
func Governance() Descriptor {
	votingPeriod := NumberValue(3)
	quorum := NumberValue(10)
	return Descriptor{
		ID:          "governance",
		Name:        "DAO Governance",
		Description: "Create proposals and vote with token-weighted ballots",
		Options: []Option{
			{
				Name:        "votingPeriod",
				Flag:        "voting-period",
				Description: "Proposal voting period in days (1-90)",
				Type:        TypeNumber,
				Default:     &votingPeriod,
				Validate:    NumberRange(1, 90),
			},
			{
				Name:        "quorum",
				Flag:        "quorum",
				Description: "Quorum as a percentage of total supply (1-100)",
				Type:        TypeNumber,
				Default:     &quorum,
				Validate:    NumberRange(1, 100),
			},
		},
		Generator: governanceGenerator{},
	}
}

type governanceGenerator struct{}

func (governanceGenerator) Generate(ctx Context) []File {
	prog := ctx.ProgramName()
	period := ctx.Options["votingPeriod"]
	quorum := ctx.Options["quorum"]

	files := []File{
		{
			Path: fmt.Sprintf("programs/%s/src/lib.rs", prog),
			Content: fmt.Sprintf(`use anchor_lang::prelude::*;

%s

pub const VOTING_PERIOD_DAYS: i64 = %s;
pub const QUORUM_PERCENT: u64 = %s;

#[program]
pub mod %s {
    use super::*;

    pub fn create_proposal(ctx: Context<CreateProposal>, title: String) -> Result<()> {
        require!(title.len() <= Proposal::MAX_TITLE, GovernanceError::TitleTooLong);
        let proposal = &mut ctx.accounts.proposal;
        proposal.proposer = ctx.accounts.proposer.key();
        proposal.title = title;
        proposal.yes_votes = 0;
        proposal.no_votes = 0;
        proposal.created_at = Clock::get()?.unix_timestamp;
        Ok(())
    }

    pub fn cast_vote(ctx: Context<CastVote>, approve: bool, weight: u64) -> Result<()> {
        let proposal = &mut ctx.accounts.proposal;
        let deadline = proposal.created_at + VOTING_PERIOD_DAYS * 86_400;
        require!(Clock::get()?.unix_timestamp <= deadline, GovernanceError::VotingClosed);

        if approve {
            proposal.yes_votes = proposal.yes_votes.checked_add(weight).unwrap();
        } else {
            proposal.no_votes = proposal.no_votes.checked_add(weight).unwrap();
        }
        Ok(())
    }
}

#[derive(Accounts)]
pub struct CreateProposal<'info> {
    #[account(init, payer = proposer, space = 8 + Proposal::SIZE)]
    pub proposal: Account<'info, Proposal>,
    #[account(mut)]
    pub proposer: Signer<'info>,
    pub system_program: Program<'info, System>,
}

#[derive(Accounts)]
pub struct CastVote<'info> {
    #[account(mut)]
    pub proposal: Account<'info, Proposal>,
    pub voter: Signer<'info>,
}

#[account]
pub struct Proposal {
    pub proposer: Pubkey,
    pub title: String,
    pub yes_votes: u64,
    pub no_votes: u64,
    pub created_at: i64,
}

impl Proposal {
    pub const MAX_TITLE: usize = 64;
    pub const SIZE: usize = 32 + 4 + Self::MAX_TITLE + 8 + 8 + 8;
}

#[error_code]
pub enum GovernanceError {
    #[msg("Proposal title is too long")]
    TitleTooLong,
    #[msg("Voting period has ended")]
    VotingClosed,
}
`, declareID(), period.String(), quorum.String(), prog),
		},
		{
			Path: fmt.Sprintf("tests/%s.ts", prog),
			Content: fmt.Sprintf(`import * as anchor from "@coral-xyz/anchor";
import { expect } from "chai";

describe("%s", () => {
  const provider = anchor.AnchorProvider.env();
  anchor.setProvider(provider);

  const program = anchor.workspace.%s;

  it("creates a proposal", async () => {
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
export const VOTING_PERIOD_DAYS = %s;
export const QUORUM_PERCENT = %s;

export async function createProposal(
  program: anchor.Program,
  proposal: PublicKey,
  title: string
): Promise<string> {
  return program.methods.createProposal(title).accounts({ proposal }).rpc();
}

export async function castVote(
  program: anchor.Program,
  proposal: PublicKey,
  approve: boolean,
  weight: anchor.BN
): Promise<string> {
  return program.methods.castVote(approve, weight).accounts({ proposal }).rpc();
}
`, PlaceholderProgramID, period.String(), quorum.String()),
		},
		readme(ctx, "governance", "An Anchor program for DAO proposals with token-weighted voting, a fixed voting period, and a quorum threshold."),
	}

	return append(files, commonFiles(ctx)...)
}

func (governanceGenerator) Dependencies(Context) DependencyMap {
	return baseDependencies()
}

func (governanceGenerator) DevDependencies(Context) DependencyMap {
	return baseDevDependencies()
}
